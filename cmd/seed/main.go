package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/amakye/shopfront-backend/config"
	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/app/repository"
	"github.com/amakye/shopfront-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Imports the product catalog from an XLSX sheet with the columns:
// name | description | price | image_url | in_stock

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d\n", len(products))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 500
	fmt.Printf("Starting bulk import with batch size: %d\n", batchSize)
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in sheet %q", sheetName)
	}

	var products []model.Product
	for i, row := range rows[1:] { // skip header
		if len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(cell(row, 2)), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", i+2, cell(row, 2), err)
		}
		if price < 0 {
			return nil, fmt.Errorf("row %d: negative price %v", i+2, price)
		}

		products = append(products, model.Product{
			Name:        strings.TrimSpace(cell(row, 0)),
			Description: strings.TrimSpace(cell(row, 1)),
			Price:       price,
			ImageURL:    strings.TrimSpace(cell(row, 3)),
			InStock:     parseInStock(cell(row, 4)),
		})
	}

	return products, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func parseInStock(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

package db

import (
	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/pkg/logger"
)

// Migrate runs database migrations.
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds starter catalog data when the products table is empty.
func Seed() error {
	var count int64
	if err := DB.Model(&model.Product{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Info("Products already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	logger.Info("Seeding starter products...")

	products := []model.Product{
		{
			Name:        "Kente Tote Bag",
			Description: "Handwoven kente tote with leather straps",
			Price:       120.00,
			ImageURL:    "https://images.example.com/products/kente-tote.jpg",
			InStock:     true,
		},
		{
			Name:        "Adinkra Print Scarf",
			Description: "Cotton scarf with hand-stamped adinkra symbols",
			Price:       45.00,
			ImageURL:    "https://images.example.com/products/adinkra-scarf.jpg",
			InStock:     true,
		},
		{
			Name:        "Beaded Bracelet Set",
			Description: "Set of three recycled-glass bead bracelets",
			Price:       25.00,
			ImageURL:    "https://images.example.com/products/bead-bracelets.jpg",
			InStock:     true,
		},
		{
			Name:        "Carved Wooden Bowl",
			Description: "Sese wood bowl, hand carved and oiled",
			Price:       80.00,
			ImageURL:    "https://images.example.com/products/wooden-bowl.jpg",
			InStock:     true,
		},
		{
			Name:        "Shea Butter Jar",
			Description: "Unrefined shea butter, 250g",
			Price:       10.00,
			ImageURL:    "https://images.example.com/products/shea-butter.jpg",
			InStock:     true,
		},
	}

	for i := range products {
		if err := DB.Create(&products[i]).Error; err != nil {
			logger.Error("Failed to seed product", err, map[string]interface{}{
				"name": products[i].Name,
			})
			return err
		}
	}

	logger.Info("Starter products seeded successfully", map[string]interface{}{
		"count": len(products),
	})
	return nil
}

package service

import (
	"testing"
	"time"

	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/app/repository"
	"github.com/amakye/shopfront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductService(t *testing.T) (ProductService, *gorm.DB) {
	gormDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gormDB) })

	return NewProductService(repository.NewProductRepository(gormDB)), gormDB
}

func TestProductService_ListProducts_OnlyInStockOldestFirst(t *testing.T) {
	svc, gormDB := setupProductService(t)

	base := time.Now().Add(-time.Hour)
	seed := []model.Product{
		{Name: "Newest", Price: 30.00, InStock: true, CreatedAt: base.Add(2 * time.Minute)},
		{Name: "Oldest", Price: 10.00, InStock: true, CreatedAt: base},
		{Name: "Hidden", Price: 99.00, InStock: false, CreatedAt: base.Add(time.Minute)},
	}
	for i := range seed {
		require.NoError(t, gormDB.Create(&seed[i]).Error)
	}

	products, err := svc.ListProducts()
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Oldest", products[0].Name)
	assert.Equal(t, "Newest", products[1].Name)
}

func TestProductService_ListProducts_EmptyCatalog(t *testing.T) {
	svc, _ := setupProductService(t)

	products, err := svc.ListProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_GetProductByID(t *testing.T) {
	svc, gormDB := setupProductService(t)
	product := createTestProduct(t, gormDB, "Kente Tote Bag", 120.00)

	found, err := svc.GetProductByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, found.ID)
	assert.Equal(t, "Kente Tote Bag", found.Name)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	svc, _ := setupProductService(t)

	found, err := svc.GetProductByID("no-such-product")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, found)
}

package repository

import (
	"testing"
	"time"

	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRepo(t *testing.T) (ProductRepository, *gorm.DB) {
	gormDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gormDB) })

	return NewProductRepository(gormDB), gormDB
}

func TestProductRepository_Create_AssignsID(t *testing.T) {
	repo, _ := setupProductRepo(t)

	product := &model.Product{Name: "Kente Tote Bag", Price: 120.00, InStock: true}
	require.NoError(t, repo.Create(product))

	assert.NotEmpty(t, product.ID)
	assert.Len(t, product.ID, 36) // uuid string form
}

func TestProductRepository_BulkCreate(t *testing.T) {
	repo, gormDB := setupProductRepo(t)

	products := []model.Product{
		{Name: "One", Price: 1.00, InStock: true},
		{Name: "Two", Price: 2.00, InStock: true},
		{Name: "Three", Price: 3.00, InStock: false},
	}
	require.NoError(t, repo.BulkCreate(products, 2))

	var count int64
	require.NoError(t, gormDB.Model(&model.Product{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestProductRepository_FindInStock_FiltersAndOrders(t *testing.T) {
	repo, gormDB := setupProductRepo(t)

	base := time.Now().Add(-time.Hour)
	seed := []model.Product{
		{Name: "Second", Price: 20.00, InStock: true, CreatedAt: base.Add(time.Minute)},
		{Name: "OutOfStock", Price: 99.00, InStock: false, CreatedAt: base.Add(30 * time.Second)},
		{Name: "First", Price: 10.00, InStock: true, CreatedAt: base},
	}
	for i := range seed {
		require.NoError(t, gormDB.Create(&seed[i]).Error)
	}

	products, err := repo.FindInStock()
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo, _ := setupProductRepo(t)

	product, err := repo.FindByID("no-such-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Nil(t, product)
}

func TestProductRepository_Update(t *testing.T) {
	repo, _ := setupProductRepo(t)

	product := &model.Product{Name: "Shea Butter Jar", Price: 10.00, InStock: true}
	require.NoError(t, repo.Create(product))

	product.InStock = false
	product.Price = 12.00
	require.NoError(t, repo.Update(product))

	found, err := repo.FindByID(product.ID)
	require.NoError(t, err)
	assert.False(t, found.InStock)
	assert.Equal(t, 12.00, found.Price)
}

func TestProductRepository_Delete(t *testing.T) {
	repo, _ := setupProductRepo(t)

	product := &model.Product{Name: "Carved Wooden Bowl", Price: 80.00, InStock: true}
	require.NoError(t, repo.Create(product))

	require.NoError(t, repo.Delete(product.ID))

	_, err := repo.FindByID(product.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

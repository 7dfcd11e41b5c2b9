package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/app/repository"
	"github.com/amakye/shopfront-backend/internal/app/service"
	"github.com/amakye/shopfront-backend/internal/db"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gormDB := newControllerTestDB(t)

	productSvc := service.NewProductService(repository.NewProductRepository(gormDB))
	ctrl := NewProductController(productSvc)

	engine := gin.New()
	engine.GET("/products", ctrl.GetProducts)
	engine.GET("/products/:id", ctrl.GetProductByID)
	return engine, gormDB
}

func TestProductController_GetProducts(t *testing.T) {
	engine, gormDB := setupProductRouter(t)

	base := time.Now().Add(-time.Hour)
	seed := []model.Product{
		{Name: "Newest", Price: 30.00, InStock: true, CreatedAt: base.Add(time.Minute)},
		{Name: "Oldest", Price: 10.00, InStock: true, CreatedAt: base},
		{Name: "Hidden", Price: 99.00, InStock: false, CreatedAt: base},
	}
	for i := range seed {
		require.NoError(t, gormDB.Create(&seed[i]).Error)
	}

	w := performRequest(engine, http.MethodGet, "/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 2.0, body["count"])

	products := body["products"].([]interface{})
	require.Len(t, products, 2)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "Oldest", first["name"])
}

func TestProductController_GetProducts_EmptyCatalog(t *testing.T) {
	engine, _ := setupProductRouter(t)

	w := performRequest(engine, http.MethodGet, "/products", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 0.0, body["count"])
}

func TestProductController_GetProducts_ReadFailureServesEmptyCatalog(t *testing.T) {
	gormDB, err := db.SetupTestDB()
	require.NoError(t, err)

	productSvc := service.NewProductService(repository.NewProductRepository(gormDB))
	ctrl := NewProductController(productSvc)

	engine := gin.New()
	engine.GET("/products", ctrl.GetProducts)

	// Close the database underneath the handler to force a read failure
	db.CleanupTestDB(gormDB)

	w := performRequest(engine, http.MethodGet, "/products", nil)

	// Still a successful response with an empty catalog, never an error page
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 0.0, body["count"])
	assert.Empty(t, body["products"])
}

func TestProductController_GetProductByID(t *testing.T) {
	engine, gormDB := setupProductRouter(t)
	product := seedProduct(t, gormDB, "Kente Tote Bag", 120.00)

	w := performRequest(engine, http.MethodGet, "/products/"+product.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	got := body["product"].(map[string]interface{})
	assert.Equal(t, "Kente Tote Bag", got["name"])
}

func TestProductController_GetProductByID_NotFound(t *testing.T) {
	engine, _ := setupProductRouter(t)

	w := performRequest(engine, http.MethodGet, "/products/no-such-product", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "PRODUCT_NOT_FOUND", body["error"])
}

package service

import (
	"testing"

	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/app/repository"
	"github.com/amakye/shopfront-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (OrderService, *gorm.DB) {
	gormDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gormDB) })

	return NewOrderService(repository.NewOrderRepository(gormDB)), gormDB
}

func TestOrderService_GetOrderByID(t *testing.T) {
	svc, gormDB := setupOrderService(t)

	customer := &model.Customer{Name: "Ama Mensah", Email: "ama@example.com"}
	require.NoError(t, gormDB.Create(customer).Error)

	order := &model.Order{
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		DeliveryAddress: "12 Ring Road, Accra",
		TotalAmount:     60.00,
		Status:          model.OrderStatusPending,
	}
	require.NoError(t, gormDB.Create(order).Error)
	require.NoError(t, gormDB.Create(&model.OrderItem{
		OrderID:      order.ID,
		ProductID:    "p1",
		ProductName:  "Beaded Bracelet Set",
		ProductPrice: 25.00,
		Quantity:     2,
		Subtotal:     50.00,
	}).Error)

	found, err := svc.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, model.OrderStatusPending, found.Status)
	require.Len(t, found.OrderItems, 1)
	assert.InDelta(t, 50.00, found.OrderItems[0].Subtotal, 1e-9)
}

func TestOrderService_GetOrderByID_NotFound(t *testing.T) {
	svc, _ := setupOrderService(t)

	found, err := svc.GetOrderByID("no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Nil(t, found)
}

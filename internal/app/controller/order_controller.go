package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/amakye/shopfront-backend/internal/app/service"
	"github.com/amakye/shopfront-backend/internal/errors"
	"github.com/amakye/shopfront-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// GetOrderByID returns a persisted order with its items.
// GET /api/v1/orders/:id
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id := c.Param("id")

	order, err := ctrl.orderService.GetOrderByID(id)
	if err != nil {
		if stderrors.Is(err, service.ErrOrderNotFound) {
			log.Warn("Order not found", map[string]interface{}{
				"order_id": id,
			})
			errors.NotFound(c, errors.OrderNotFound, "Order not found")
			return
		}
		log.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": id,
		})
		errors.InternalError(c, "Failed to fetch order")
		return
	}

	log.Info("Order fetched successfully", map[string]interface{}{
		"order_id": order.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"order_number": order.Number(),
	})
}

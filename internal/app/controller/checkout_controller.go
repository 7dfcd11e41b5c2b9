package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/amakye/shopfront-backend/config"
	"github.com/amakye/shopfront-backend/internal/app/service"
	"github.com/amakye/shopfront-backend/internal/errors"
	"github.com/amakye/shopfront-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	checkoutService service.CheckoutService
	checkoutConfig  config.CheckoutConfig
}

func NewCheckoutController(checkoutService service.CheckoutService, checkoutConfig config.CheckoutConfig) *CheckoutController {
	return &CheckoutController{
		checkoutService: checkoutService,
		checkoutConfig:  checkoutConfig,
	}
}

// CheckoutRequest is the contact and delivery form. The binding tags are the
// required-field precondition: the sequencer never sees an incomplete form.
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Notes   string `json:"notes"`
}

// PlaceOrder submits the session's cart as an order.
// POST /api/v1/checkout
func (ctrl *CheckoutController) PlaceOrder(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for checkout")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid checkout request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Name, email, phone and delivery address are required")
		return
	}

	result, err := ctrl.checkoutService.PlaceOrder(sessionID, service.CheckoutDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	})
	if err != nil {
		switch {
		case stderrors.Is(err, service.ErrEmptyCart):
			log.Warn("Checkout with empty cart", map[string]interface{}{
				"session_id": sessionID,
			})
			errors.BadRequest(c, errors.CartEmpty, "Your cart is empty")
		case stderrors.Is(err, service.ErrCheckoutInProgress):
			log.Warn("Checkout already in progress", map[string]interface{}{
				"session_id": sessionID,
			})
			errors.Conflict(c, errors.CheckoutInProgress, "An order submission is already in progress")
		default:
			// Every gateway failure surfaces as the same generic notification.
			log.Error("Checkout failed", err, map[string]interface{}{
				"session_id": sessionID,
			})
			errors.RespondWithError(c, http.StatusInternalServerError, errors.CheckoutFailed,
				"Failed to submit order. Please try again.")
		}
		return
	}

	log.Info("Order placed successfully", map[string]interface{}{
		"session_id":   sessionID,
		"order_id":     result.Order.ID,
		"order_number": result.OrderNumber,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":            "Order placed successfully",
		"order_number":       result.OrderNumber,
		"order":              result.Order,
		"success_display_ms": ctrl.checkoutConfig.SuccessDisplayDuration.Milliseconds(),
	})
}

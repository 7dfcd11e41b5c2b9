package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/amakye/shopfront-backend/internal/app/service"
	"github.com/amakye/shopfront-backend/internal/errors"
	"github.com/amakye/shopfront-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateCartLineRequest struct {
	// Zero and negative values remove the line, so no gt=0 constraint here.
	Quantity int `json:"quantity"`
}

// GetCart returns the session's cart with derived totals.
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for cart access")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	cart := ctrl.cartService.GetCart(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"lines":        cart.Lines,
		"total_amount": cart.TotalAmount(),
		"total_items":  cart.TotalItemCount(),
	})
}

// AddToCart adds one unit of a product to the session's cart.
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for cart add")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	if err := ctrl.cartService.AddItem(sessionID, req.ProductID); err != nil {
		if stderrors.Is(err, service.ErrProductNotFound) {
			log.Warn("Product not found for cart", map[string]interface{}{
				"session_id": sessionID,
				"product_id": req.ProductID,
			})
			errors.NotFound(c, errors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": req.ProductID,
		})
		errors.InternalError(c, "Failed to add item to cart")
		return
	}

	log.Info("Item added to cart successfully", map[string]interface{}{
		"session_id": sessionID,
		"product_id": req.ProductID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item added to cart",
	})
}

// UpdateCartLine sets a line's quantity; zero or below removes the line.
// PUT /api/v1/cart/:product_id
func (ctrl *CartController) UpdateCartLine(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for cart update")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	productID := c.Param("product_id")

	var req UpdateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart update request", map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
			"error":      err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	ctrl.cartService.UpdateQuantity(sessionID, productID, req.Quantity)

	log.Info("Cart line updated", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   req.Quantity,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
	})
}

// RemoveFromCart deletes a line from the session's cart.
// DELETE /api/v1/cart/:product_id
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for cart removal")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	productID := c.Param("product_id")
	ctrl.cartService.RemoveItem(sessionID, productID)

	log.Info("Cart line removed", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}

// ClearCart empties the session's cart.
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		log.Warn("Missing session for cart clear")
		errors.BadRequest(c, errors.ValidationRequired, "Session required")
		return
	}

	ctrl.cartService.ClearCart(sessionID)

	log.Info("Cart cleared", map[string]interface{}{
		"session_id": sessionID,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}

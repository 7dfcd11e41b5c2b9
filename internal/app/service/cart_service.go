package service

import (
	"errors"
	"sync"

	"github.com/amakye/shopfront-backend/internal/app/model"
	"github.com/amakye/shopfront-backend/internal/app/repository"
	"github.com/amakye/shopfront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// CartService holds one in-memory cart per storefront session. Carts are
// never persisted: they start empty, live for the session, and are destroyed
// when an order completes. The mutex covers concurrent HTTP requests; within
// a single session the storefront drives operations one at a time.
type CartService interface {
	GetCart(sessionID string) *model.Cart
	AddItem(sessionID, productID string) error
	UpdateQuantity(sessionID, productID string, quantity int)
	RemoveItem(sessionID, productID string)
	ClearCart(sessionID string)
}

type cartService struct {
	productRepo repository.ProductRepository

	mu    sync.RWMutex
	carts map[string]*model.Cart
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{
		productRepo: productRepo,
		carts:       make(map[string]*model.Cart),
	}
}

// GetCart returns a copy of the session's cart, empty if none exists yet.
func (s *cartService) GetCart(sessionID string) *model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return &model.Cart{}
	}
	return cart.Clone()
}

// AddItem snapshots the product's name, price and image into the session's
// cart, incrementing the quantity if a line for it already exists.
func (s *cartService) AddItem(sessionID, productID string) error {
	logger.Debug("Adding item to cart", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
	})

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cannot add to cart: product not found", map[string]interface{}{
				"session_id": sessionID,
				"product_id": productID,
			})
			return ErrProductNotFound
		}
		logger.Error("Failed to fetch product for cart", err, map[string]interface{}{
			"session_id": sessionID,
			"product_id": productID,
		})
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &model.Cart{}
		s.carts[sessionID] = cart
	}
	cart.AddItem(product)

	logger.Info("Item added to cart", map[string]interface{}{
		"session_id":  sessionID,
		"product_id":  productID,
		"total_items": cart.TotalItemCount(),
	})
	return nil
}

// UpdateQuantity sets the line's quantity exactly; zero or below removes the
// line. An unknown product id is a no-op.
func (s *cartService) UpdateQuantity(sessionID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	cart.UpdateQuantity(productID, quantity)

	logger.Info("Cart quantity updated", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
		"quantity":   quantity,
	})
}

func (s *cartService) RemoveItem(sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		return
	}
	cart.RemoveItem(productID)

	logger.Info("Cart item removed", map[string]interface{}{
		"session_id": sessionID,
		"product_id": productID,
	})
}

func (s *cartService) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cart, ok := s.carts[sessionID]; ok {
		cart.Clear()
		delete(s.carts, sessionID)
	}

	logger.Info("Cart cleared", map[string]interface{}{
		"session_id": sessionID,
	})
}

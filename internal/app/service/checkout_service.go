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
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// checkoutStage names the steps of the submission pipeline. Each step
// consumes the id assigned by the previous one, so they run strictly in
// order; a failure at any stage aborts the rest with no compensation.
type checkoutStage string

const (
	stageResolvingCustomer checkoutStage = "resolving_customer"
	stageCreatingOrder     checkoutStage = "creating_order"
	stageCreatingItems     checkoutStage = "creating_items"
	stageSucceeded         checkoutStage = "succeeded"
	stageFailed            checkoutStage = "failed"
)

// CheckoutDetails is the contact and delivery form. Required fields are
// enforced at the controller boundary before submission is attempted.
type CheckoutDetails struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// CheckoutResult reports a completed submission.
type CheckoutResult struct {
	Order       *model.Order
	OrderNumber string
}

type CheckoutService interface {
	PlaceOrder(sessionID string, details CheckoutDetails) (*CheckoutResult, error)
}

type checkoutService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	cartService  CartService

	mu         sync.Mutex
	submitting map[string]bool
}

func NewCheckoutService(
	customerRepo repository.CustomerRepository,
	orderRepo repository.OrderRepository,
	cartService CartService,
) CheckoutService {
	return &checkoutService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		cartService:  cartService,
		submitting:   make(map[string]bool),
	}
}

// begin marks the session as submitting. It fails if a submission is already
// outstanding, which is what disables the submit control in the storefront.
func (s *checkoutService) begin(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting[sessionID] {
		return ErrCheckoutInProgress
	}
	s.submitting[sessionID] = true
	return nil
}

func (s *checkoutService) end(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submitting, sessionID)
}

// PlaceOrder submits the session's cart as a persisted order: resolve the
// customer by email (create on first sight), insert the order, then insert
// the line items as one batch. On any failure the remaining steps are
// skipped, nothing already written is rolled back, and the cart is left
// untouched so the user can retry. On success the cart is cleared.
func (s *checkoutService) PlaceOrder(sessionID string, details CheckoutDetails) (*CheckoutResult, error) {
	if err := s.begin(sessionID); err != nil {
		logger.Warn("Checkout rejected: submission already in progress", map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, err
	}
	defer s.end(sessionID)

	cart := s.cartService.GetCart(sessionID)
	if cart.IsEmpty() {
		logger.Warn("Checkout rejected: cart is empty", map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, ErrEmptyCart
	}

	logger.Info("Starting checkout", map[string]interface{}{
		"session_id":   sessionID,
		"email":        details.Email,
		"line_count":   len(cart.Lines),
		"total_amount": cart.TotalAmount(),
	})

	stage := stageResolvingCustomer
	customerID, err := s.resolveCustomer(details)
	if err != nil {
		return nil, s.fail(sessionID, stage, err)
	}

	stage = stageCreatingOrder
	order := &model.Order{
		CustomerID:      customerID,
		CustomerName:    details.Name,
		CustomerEmail:   details.Email,
		CustomerPhone:   details.Phone,
		DeliveryAddress: details.Address,
		TotalAmount:     cart.TotalAmount(),
		Status:          model.OrderStatusPending,
		Notes:           details.Notes,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, s.fail(sessionID, stage, err)
	}

	stage = stageCreatingItems
	items := make([]model.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, model.OrderItem{
			OrderID:      order.ID,
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			ProductPrice: line.Price,
			Quantity:     line.Quantity,
			Subtotal:     line.Subtotal(),
		})
	}
	if err := s.orderRepo.CreateItems(items); err != nil {
		// The order row is already persisted and stays behind with no items.
		logger.Warn("Order left without items after failed item insert", map[string]interface{}{
			"session_id": sessionID,
			"order_id":   order.ID,
		})
		return nil, s.fail(sessionID, stage, err)
	}

	s.cartService.ClearCart(sessionID)

	logger.Info("Checkout completed", map[string]interface{}{
		"session_id":   sessionID,
		"stage":        stageSucceeded,
		"order_id":     order.ID,
		"order_number": order.Number(),
		"item_count":   len(items),
		"total_amount": order.TotalAmount,
	})

	return &CheckoutResult{
		Order:       order,
		OrderNumber: order.Number(),
	}, nil
}

// resolveCustomer reuses the customer matching the email, creating one on
// first sight. Exactly one of lookup or create happens per submission. The
// lookup and insert are not atomic: two concurrent first checkouts with the
// same email can both insert.
func (s *checkoutService) resolveCustomer(details CheckoutDetails) (string, error) {
	existing, err := s.customerRepo.FindByEmail(details.Email)
	if err == nil {
		logger.Debug("Reusing existing customer", map[string]interface{}{
			"customer_id": existing.ID,
			"email":       existing.Email,
		})
		return existing.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	customer := &model.Customer{
		Name:  details.Name,
		Email: details.Email,
		Phone: details.Phone,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return "", err
	}

	logger.Debug("Created new customer", map[string]interface{}{
		"customer_id": customer.ID,
		"email":       customer.Email,
	})
	return customer.ID, nil
}

// fail logs the aborted stage and passes the gateway error through untouched.
// The sequencer does not distinguish error subtypes; every failure surfaces
// to the caller as the same opaque signal.
func (s *checkoutService) fail(sessionID string, stage checkoutStage, err error) error {
	logger.Error("Checkout failed", err, map[string]interface{}{
		"session_id": sessionID,
		"stage":      stage,
		"outcome":    stageFailed,
	})
	return err
}

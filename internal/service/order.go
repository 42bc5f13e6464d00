package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// TaxRate is applied exactly once, at submission, and baked into the
// stored total
const TaxRate = 0.08

var (
	// ErrNoIdentity is returned when an order has neither a user nor
	// guest details
	ErrNoIdentity = errors.New("order requires a user or guest details")

	// ErrBothIdentities is returned when an order carries both a user
	// and guest details
	ErrBothIdentities = errors.New("order cannot have both a user and guest details")
)

// OrderService owns the order lifecycle
type OrderService struct {
	store  *store.Store
	strict bool
}

// NewOrderService creates a new order service
func NewOrderService(st *store.Store, strictTransitions bool) *OrderService {
	return &OrderService{
		store:  st,
		strict: strictTransitions,
	}
}

// Subtotal sums price times quantity over the cart snapshot
func Subtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Dish.Price * float64(item.Quantity)
	}
	return subtotal
}

func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Submit materializes an order from a cart snapshot. Exactly one of
// userID and guest identifies the buyer. The total is priced here and
// never recomputed: subtotal plus 8% tax, rounded to cents.
func (s *OrderService) Submit(items []models.CartItem, userID *uuid.UUID, guest *models.GuestDetails) (*models.Order, error) {
	if userID == nil && guest == nil {
		return nil, ErrNoIdentity
	}
	if userID != nil && guest != nil {
		return nil, ErrBothIdentities
	}

	if userID != nil {
		if _, err := s.store.GetUser(*userID); err != nil {
			return nil, fmt.Errorf("failed to resolve order user: %w", err)
		}
	}

	order := s.store.CreateOrder(models.Order{
		UserID:       userID,
		GuestDetails: guest,
		Items:        items,
		Total:        roundToCents(Subtotal(items) * (1 + TaxRate)),
		Status:       models.OrderStatusPending,
	})
	return &order, nil
}

// Get retrieves an order by ID
func (s *OrderService) Get(id uuid.UUID) (models.Order, error) {
	return s.store.GetOrder(id)
}

// History returns a user's orders, most recent first
func (s *OrderService) History(userID uuid.UUID) []models.Order {
	return s.store.ListOrdersByUser(userID)
}

// ListAll returns every order, most recent first, for administrative
// review
func (s *OrderService) ListAll() []models.Order {
	return s.store.ListOrders()
}

// SetStatus overwrites an order's status
func (s *OrderService) SetStatus(id uuid.UUID, status models.OrderStatus) (models.Order, error) {
	return s.store.SetOrderStatus(id, status, s.strict)
}

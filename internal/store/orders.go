package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

func cloneOrder(o models.Order) models.Order {
	items := make([]models.CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items

	if o.UserID != nil {
		id := *o.UserID
		o.UserID = &id
	}
	if o.GuestDetails != nil {
		details := *o.GuestDetails
		o.GuestDetails = &details
	}
	return o
}

// CreateOrder assigns a fresh ID and creation time, stores a snapshot
// copy and returns it. The total is taken as-is: pricing happens once
// in the order service and is never recomputed here.
func (s *Store) CreateOrder(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = uuid.New()
	order.CreatedAt = time.Now()
	s.orders = append(s.orders, cloneOrder(order))
	return order
}

// GetOrder retrieves an order by ID
func (s *Store) GetOrder(id uuid.UUID) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ListOrders returns all orders, most recent first. Orders are
// appended in creation order, so the reverse of insertion order is
// descending createdAt.
func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		orders = append(orders, cloneOrder(s.orders[i]))
	}
	return orders
}

// ListOrdersByUser returns the orders belonging to a user, most
// recent first
func (s *Store) ListOrdersByUser(userID uuid.UUID) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var orders []models.Order
	for i := len(s.orders) - 1; i >= 0; i-- {
		o := s.orders[i]
		if o.UserID != nil && *o.UserID == userID {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders
}

// SetOrderStatus overwrites an order's status. With strict disabled
// any of the enumerated statuses may replace any other; with strict
// enabled the change must be a legal lifecycle step. The check and
// the write happen under the same lock.
func (s *Store) SetOrderStatus(id uuid.UUID, status models.OrderStatus, strict bool) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if strict && !s.orders[i].Status.CanTransitionTo(status) {
			return models.Order{}, ErrInvalidTransition
		}
		s.orders[i].Status = status
		return cloneOrder(s.orders[i]), nil
	}
	return models.Order{}, ErrNotFound
}

// Package store owns the canonical in-process state of the ordering
// platform. It replaces the reference implementation's ambient mock
// collections with an explicit object that is passed to each service.
//
// Every method is an atomic read-modify-write under a single RWMutex,
// which gives concurrent HTTP clients the per-entity mutual exclusion
// the single-threaded reference never needed. All results are deep
// copies; callers cannot reach stored state through a returned value.
package store

import (
	"sync"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// Store holds all entity collections. Slices preserve insertion
// order, which is the order the listing operations are defined in.
type Store struct {
	mu sync.RWMutex

	dishes       []models.Dish
	users        []models.User
	orders       []models.Order
	reservations []models.Reservation
}

// New creates an empty store
func New() *Store {
	return &Store{}
}

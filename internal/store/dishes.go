package store

import (
	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
)

// ListDishes returns all dishes in insertion order
func (s *Store) ListDishes() []models.Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dishes := make([]models.Dish, len(s.dishes))
	copy(dishes, s.dishes)
	return dishes
}

// GetDish retrieves a dish by ID
func (s *Store) GetDish(id uuid.UUID) (models.Dish, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Dish{}, ErrNotFound
}

// CreateDish assigns a fresh ID and appends the dish
func (s *Store) CreateDish(dish models.Dish) models.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()

	dish.ID = uuid.New()
	s.dishes = append(s.dishes, dish)
	return dish
}

// UpdateDish merges only the provided fields into the stored dish
func (s *Store) UpdateDish(id uuid.UUID, req models.DishUpdateRequest) (models.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.dishes {
		if s.dishes[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.dishes[i].Name = *req.Name
		}
		if req.Description != nil {
			s.dishes[i].Description = *req.Description
		}
		if req.Price != nil {
			s.dishes[i].Price = *req.Price
		}
		if req.Category != nil {
			s.dishes[i].Category = *req.Category
		}
		if req.ImageURL != nil {
			s.dishes[i].ImageURL = *req.ImageURL
		}
		return s.dishes[i], nil
	}
	return models.Dish{}, ErrNotFound
}

// DeleteDish removes a dish. Removing an absent ID is not an error.
// Existing orders are unaffected because they hold dish snapshots.
func (s *Store) DeleteDish(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dishes := s.dishes[:0]
	for _, d := range s.dishes {
		if d.ID != id {
			dishes = append(dishes, d)
		}
	}
	s.dishes = dishes
}

package service

import (
	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// CatalogService handles menu management
type CatalogService struct {
	store *store.Store
}

// NewCatalogService creates a new catalog service
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Menu returns all dishes in insertion order
func (s *CatalogService) Menu() []models.Dish {
	return s.store.ListDishes()
}

// Dish retrieves a dish by ID
func (s *CatalogService) Dish(id uuid.UUID) (models.Dish, error) {
	return s.store.GetDish(id)
}

// CreateDish adds a dish to the menu
func (s *CatalogService) CreateDish(req models.DishRequest) models.Dish {
	return s.store.CreateDish(models.Dish{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
}

// UpdateDish merges the provided fields into an existing dish
func (s *CatalogService) UpdateDish(id uuid.UUID, req models.DishUpdateRequest) (models.Dish, error) {
	return s.store.UpdateDish(id, req)
}

// DeleteDish removes a dish from the menu. Existing orders keep
// their snapshots.
func (s *CatalogService) DeleteDish(id uuid.UUID) {
	s.store.DeleteDish(id)
}

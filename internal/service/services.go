package service

import (
	"github.com/gourmet-grove/ordering-service/internal/config"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// Services provides access to all service instances
type Services struct {
	Auth         *AuthService
	Catalog      *CatalogService
	Orders       *OrderService
	Reservations *ReservationService
	Dashboard    *DashboardService
}

// New creates the service container over a shared store
func New(st *store.Store, cfg *config.Config) *Services {
	jwtConfig := JWTConfig{
		Secret:    cfg.JWT.Secret,
		ExpiresIn: cfg.JWT.ExpiresIn,
	}

	return &Services{
		Auth:         NewAuthService(st, jwtConfig),
		Catalog:      NewCatalogService(st),
		Orders:       NewOrderService(st, cfg.Orders.StrictTransitions),
		Reservations: NewReservationService(st, cfg.Orders.StrictTransitions),
		Dashboard:    NewDashboardService(st),
	}
}

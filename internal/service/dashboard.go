package service

import (
	"time"

	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// DashboardService is a read-only projection over orders and users
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Stats computes the dashboard summary from current store state.
// Dates compare in process-local time, matching the reference.
func (s *DashboardService) Stats() models.DashboardStats {
	var stats models.DashboardStats
	now := time.Now()

	for _, o := range s.store.ListOrders() {
		if o.Status == models.OrderStatusCompleted {
			stats.TotalRevenue += o.Total
		}
		if o.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if sameDay(o.CreatedAt, now) {
			stats.TodaysOrders++
		}
	}

	for _, u := range s.store.ListUsers() {
		if u.Role == models.RoleUser {
			stats.TotalCustomers++
		}
	}

	return stats
}

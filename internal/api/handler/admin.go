package handler

import (
	"net/http"

	"github.com/gourmet-grove/ordering-service/internal/api"
	"github.com/gourmet-grove/ordering-service/internal/service"
)

// AdminHandler serves the dashboard projection and the user listing
type AdminHandler struct {
	dashboardService *service.DashboardService
	authService      *service.AuthService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dashboardService *service.DashboardService, authService *service.AuthService) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		authService:      authService,
	}
}

// HandleStats returns the dashboard summary, recomputed per request
func (h *AdminHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}
	if !adminOnly(w, r) {
		return
	}

	respondJSON(w, h.dashboardService.Stats())
}

// HandleUsers lists all users in registration order
func (h *AdminHandler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}
	if !adminOnly(w, r) {
		return
	}

	respondJSON(w, h.authService.ListUsers())
}

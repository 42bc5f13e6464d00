package router

import (
	"net/http"

	"github.com/gourmet-grove/ordering-service/internal/api/handler"
	"github.com/gourmet-grove/ordering-service/internal/middleware"
	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/service"
	"github.com/gourmet-grove/ordering-service/internal/websockets"
)

// Router handles HTTP routing
type Router struct {
	mux  *http.ServeMux
	svcs *service.Services
	hub  *websockets.Hub
}

// New creates a new router
func New(svcs *service.Services, hub *websockets.Hub) *Router {
	r := &Router{
		mux:  http.NewServeMux(),
		svcs: svcs,
		hub:  hub,
	}

	r.setupRoutes()

	return r
}

// ServeHTTP implements the http.Handler interface
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// setupRoutes sets up the routes for the router
func (r *Router) setupRoutes() {
	authHandler := handler.NewAuthHandler(r.svcs.Auth)
	menuHandler := handler.NewMenuHandler(r.svcs.Catalog, r.hub)
	orderHandler := handler.NewOrderHandler(r.svcs.Orders, r.hub)
	reservationHandler := handler.NewReservationHandler(r.svcs.Reservations, r.hub)
	adminHandler := handler.NewAdminHandler(r.svcs.Dashboard, r.svcs.Auth)

	apiMux := http.NewServeMux()
	apiMux.Handle("/auth/", http.HandlerFunc(authHandler.HandleAuth))
	apiMux.Handle("/menu", http.HandlerFunc(menuHandler.HandleMenu))
	apiMux.Handle("/menu/", http.HandlerFunc(menuHandler.HandleMenu))
	apiMux.Handle("/orders", http.HandlerFunc(orderHandler.HandleOrders))
	apiMux.Handle("/orders/", http.HandlerFunc(orderHandler.HandleOrders))
	apiMux.Handle("/reservations", http.HandlerFunc(reservationHandler.HandleReservations))
	apiMux.Handle("/reservations/", http.HandlerFunc(reservationHandler.HandleReservations))
	apiMux.Handle("/admin/stats", http.HandlerFunc(adminHandler.HandleStats))
	apiMux.Handle("/admin/users", http.HandlerFunc(adminHandler.HandleUsers))

	// Tokens are optional on the public surface; the per-operation
	// role checks live in the handlers
	apiChain := middleware.Logger(
		middleware.Authenticate(r.svcs.Auth)(
			apiMux,
		),
	)

	r.mux.Handle("/api/", http.StripPrefix("/api", apiChain))
	r.mux.Handle("/ws", http.HandlerFunc(r.handleWebSocket))
}

// handleWebSocket upgrades an admin connection onto the event feed.
// Browsers cannot set headers on WebSocket requests, so the token
// travels as a query parameter.
func (r *Router) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	token := req.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "token is required", http.StatusUnauthorized)
		return
	}

	user, err := r.svcs.Auth.ResolveToken(token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	if user.Role != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	conn, err := websockets.Upgrader.Upgrade(w, req, nil)
	if err != nil {
		// The upgrader has already written the error to the response
		return
	}

	websockets.ServeWs(r.hub, conn, user.ID.String())
}

package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/api"
	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/service"
	"github.com/gourmet-grove/ordering-service/internal/websockets"
)

// OrderHandler handles order-related requests
type OrderHandler struct {
	orderService *service.OrderService
	hub          *websockets.Hub
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, hub *websockets.Hub) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		hub:          hub,
	}
}

// HandleOrders handles requests under /orders
func (h *OrderHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/orders")
	path = strings.TrimPrefix(path, "/")

	if path == "history" {
		h.orderHistory(w, r)
		return
	}

	if idStr, found := strings.CutSuffix(path, "/status"); found {
		id, err := uuid.Parse(idStr)
		if err != nil {
			api.BadRequest(w, "Invalid order ID")
			return
		}
		h.setStatus(w, r, id)
		return
	}

	switch r.Method {
	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.submitOrder(w, r)

	case http.MethodGet:
		if path == "" {
			h.listOrders(w, r)
			return
		}
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid order ID")
			return
		}
		h.getOrder(w, r, id)

	default:
		api.MethodNotAllowed(w)
	}
}

// submitOrder materializes an order from the submitted cart snapshot.
// Authenticated requests order as the token's user; anonymous
// requests must carry guest details.
func (h *OrderHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	userID, _ := currentUserID(r)

	order, err := h.orderService.Submit(req.Items, userID, req.GuestDetails)
	if err != nil {
		respondError(w, err)
		return
	}

	h.hub.Notify(websockets.EventOrderCreated, order)
	respondCreated(w, order)
}

// getOrder gets an order by ID. Public, so guests can track their
// order from the confirmation link.
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	order, err := h.orderService.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, order)
}

// orderHistory returns the authenticated user's orders, most recent
// first
func (h *OrderHandler) orderHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	userID, ok := currentUserID(r)
	if !ok {
		api.Unauthorized(w, "Authorization required")
		return
	}

	respondJSON(w, h.orderService.History(*userID))
}

// listOrders returns every order for administrative review
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	if !adminOnly(w, r) {
		return
	}

	respondJSON(w, h.orderService.ListAll())
}

// setStatus overwrites an order's status
func (h *OrderHandler) setStatus(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if r.Method != http.MethodPut {
		api.MethodNotAllowed(w)
		return
	}
	if !adminOnly(w, r) {
		return
	}

	var req models.OrderStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	order, err := h.orderService.SetStatus(id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	h.hub.Notify(websockets.EventOrderStatus, order)
	respondJSON(w, order)
}

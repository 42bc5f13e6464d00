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

// MenuHandler handles menu-related requests. Reads are public;
// mutations are admin only.
type MenuHandler struct {
	catalogService *service.CatalogService
	hub            *websockets.Hub
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(catalogService *service.CatalogService, hub *websockets.Hub) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
		hub:            hub,
	}
}

// HandleMenu handles requests under /menu
func (h *MenuHandler) HandleMenu(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/menu")
	path = strings.TrimPrefix(path, "/")

	switch r.Method {
	case http.MethodGet:
		if path == "" {
			h.listDishes(w, r)
			return
		}
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid dish ID")
			return
		}
		h.getDish(w, r, id)

	case http.MethodPost:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.createDish(w, r)

	case http.MethodPut:
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid dish ID")
			return
		}
		h.updateDish(w, r, id)

	case http.MethodDelete:
		id, err := uuid.Parse(path)
		if err != nil {
			api.BadRequest(w, "Invalid dish ID")
			return
		}
		h.deleteDish(w, r, id)

	default:
		api.MethodNotAllowed(w)
	}
}

// listDishes lists the full menu
func (h *MenuHandler) listDishes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.catalogService.Menu())
}

// getDish gets a single dish
func (h *MenuHandler) getDish(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	dish, err := h.catalogService.Dish(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, dish)
}

// createDish adds a dish to the menu
func (h *MenuHandler) createDish(w http.ResponseWriter, r *http.Request) {
	if !adminOnly(w, r) {
		return
	}

	var req models.DishRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	dish := h.catalogService.CreateDish(req)

	h.hub.Notify(websockets.EventMenuChanged, dish)
	respondCreated(w, dish)
}

// updateDish merges the provided fields into an existing dish
func (h *MenuHandler) updateDish(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if !adminOnly(w, r) {
		return
	}

	var req models.DishUpdateRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	dish, err := h.catalogService.UpdateDish(id, req)
	if err != nil {
		respondError(w, err)
		return
	}

	h.hub.Notify(websockets.EventMenuChanged, dish)
	respondJSON(w, dish)
}

// deleteDish removes a dish. Deleting an absent dish succeeds, and
// existing orders keep their snapshots either way.
func (h *MenuHandler) deleteDish(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if !adminOnly(w, r) {
		return
	}

	h.catalogService.DeleteDish(id)

	h.hub.Notify(websockets.EventMenuChanged, map[string]string{"deleted": id.String()})
	w.WriteHeader(http.StatusNoContent)
}

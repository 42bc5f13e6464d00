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

// ReservationHandler handles table booking requests
type ReservationHandler struct {
	reservationService *service.ReservationService
	hub                *websockets.Hub
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService, hub *websockets.Hub) *ReservationHandler {
	return &ReservationHandler{
		reservationService: reservationService,
		hub:                hub,
	}
}

// HandleReservations handles requests under /reservations
func (h *ReservationHandler) HandleReservations(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/reservations")
	path = strings.TrimPrefix(path, "/")

	if idStr, found := strings.CutSuffix(path, "/status"); found {
		id, err := uuid.Parse(idStr)
		if err != nil {
			api.BadRequest(w, "Invalid reservation ID")
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
		h.submitReservation(w, r)

	case http.MethodGet:
		if path != "" {
			api.BadRequest(w, "Invalid request path")
			return
		}
		h.listReservations(w, r)

	default:
		api.MethodNotAllowed(w)
	}
}

// submitReservation creates a pending reservation. The 1-12 guest
// bound is enforced here at the boundary.
func (h *ReservationHandler) submitReservation(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	reservation := h.reservationService.Submit(req)

	h.hub.Notify(websockets.EventReservationCreated, reservation)
	respondCreated(w, reservation)
}

// listReservations returns all reservations, newest date first
func (h *ReservationHandler) listReservations(w http.ResponseWriter, r *http.Request) {
	if !adminOnly(w, r) {
		return
	}

	respondJSON(w, h.reservationService.List())
}

// setStatus records the approval decision
func (h *ReservationHandler) setStatus(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	if r.Method != http.MethodPut {
		api.MethodNotAllowed(w)
		return
	}
	if !adminOnly(w, r) {
		return
	}

	var req models.ReservationStatusRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	reservation, err := h.reservationService.SetStatus(id, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	h.hub.Notify(websockets.EventReservationStatus, reservation)
	respondJSON(w, reservation)
}

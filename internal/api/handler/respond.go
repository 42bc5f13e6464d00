package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/gourmet-grove/ordering-service/internal/api"
	"github.com/gourmet-grove/ordering-service/internal/middleware"
	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/service"
	"github.com/gourmet-grove/ordering-service/internal/store"
)

// validate checks the struct tags on request DTOs. Shape violations
// are rejected here at the boundary, before any service is called.
var validate = validator.New()

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func respondCreated(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// decodeAndValidate decodes the body into v and applies its
// validation tags
func decodeAndValidate(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return validate.Struct(v)
}

// respondError maps domain errors onto HTTP statuses
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		api.NotFound(w, err.Error())
	case errors.Is(err, store.ErrDuplicateEmail):
		api.Conflict(w, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		api.Unauthorized(w, err.Error())
	case errors.Is(err, store.ErrInvalidTransition),
		errors.Is(err, service.ErrNoIdentity),
		errors.Is(err, service.ErrBothIdentities):
		api.BadRequest(w, err.Error())
	default:
		api.InternalServerError(w, err)
	}
}

// adminOnly writes the refusal and returns false unless the request
// is authenticated as an admin
func adminOnly(w http.ResponseWriter, r *http.Request) bool {
	role, ok := middleware.GetUserRole(r.Context())
	if !ok {
		api.Unauthorized(w, "Authorization required")
		return false
	}
	if role != models.RoleAdmin {
		api.Forbidden(w)
		return false
	}
	return true
}

// currentUserID returns the authenticated user's ID, if any
func currentUserID(r *http.Request) (*uuid.UUID, bool) {
	idStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		return nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, false
	}
	return &id, true
}

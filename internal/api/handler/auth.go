package handler

import (
	"net/http"
	"strings"

	"github.com/gourmet-grove/ordering-service/internal/api"
	"github.com/gourmet-grove/ordering-service/internal/models"
	"github.com/gourmet-grove/ordering-service/internal/service"
)

// AuthHandler handles registration, login and profile requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// sessionResponse pairs a user with a freshly issued token
type sessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// HandleAuth handles requests under /auth/
func (h *AuthHandler) HandleAuth(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/auth")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "register":
		h.register(w, r)
	case "login":
		h.login(w, r)
	case "me":
		h.me(w, r)
	default:
		api.NotFound(w, "Not found")
	}
}

// register creates a new customer account and issues a token
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.RegisterRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	token, user, err := h.authService.Register(req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondCreated(w, sessionResponse{Token: token, User: *user})
}

// login authenticates an existing user and issues a fresh token
func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.MethodNotAllowed(w)
		return
	}

	var req models.LoginRequest
	if err := decodeAndValidate(r, &req); err != nil {
		api.BadRequest(w, err.Error())
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, sessionResponse{Token: token, User: *user})
}

// me resolves the presented token to its user
func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		api.Unauthorized(w, "Authorization header required")
		return
	}

	user, err := h.authService.ResolveToken(parts[1])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, user)
}

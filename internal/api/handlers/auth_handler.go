package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alias8/invoices-demo-be/internal/auth"
	"github.com/alias8/invoices-demo-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for login.
type AuthHandler struct {
	service services.UserServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserServiceProvider) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials against the session's data copy and returns
// the matched user's id and username.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionID := auth.SessionIDFromContext(r.Context())
	user, err := h.service.Authenticate(sessionID, payload.Username, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			respondError(w, http.StatusBadRequest, "Username and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			log.Warn().Err(err).Str("username", payload.Username).Msg("Failed authentication attempt")
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
		default:
			log.Error().Err(err).Msg("Failed to authenticate user")
			respondError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	respondJSON(w, http.StatusOK, user)
}

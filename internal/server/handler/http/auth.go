// Package http provides the JSON HTTP handlers and routing for the
// dashboard API.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/linkboard/linkboard/internal/middleware"
	"github.com/linkboard/linkboard/internal/models"
	"github.com/linkboard/linkboard/internal/service"
)

// AuthService defines the authentication operations required by the
// HTTP handlers.
type AuthService interface {
	// Login validates credentials and returns the admin auth payload.
	Login(username, password string) (models.AuthPayload, error)
	// ValidToken reports whether a token equals the configured admin token.
	ValidToken(token string) bool
	// Payload returns the standard authenticated-admin response body.
	Payload() models.AuthPayload
}

// AuthHandler handles login and token status requests.
type AuthHandler struct {
	AuthService AuthService
}

// LoginRequest represents the JSON payload for admin login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/login. Both credential fields are required;
// on success the static admin token is returned.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	payload, err := h.AuthService.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		writeError(w, http.StatusBadRequest, "Username and password are required")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, payload)
	}
}

type statusResponse struct {
	models.AuthPayload
	Authenticated bool `json:"authenticated"`
}

// Status handles GET /api/auth/status. It validates the header-derived
// token and reports the current auth state without mutating anything.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !h.AuthService.ValidToken(middleware.ExtractToken(r)) {
		writeJSON(w, http.StatusUnauthorized, map[string]bool{"authenticated": false})
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{AuthPayload: h.AuthService.Payload(), Authenticated: true})
}

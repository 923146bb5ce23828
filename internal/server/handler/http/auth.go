package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkova/kidtrack/internal/models"
	"github.com/avolkova/kidtrack/internal/session"
)

// AuthService defines the interface for authentication operations required
// by the HTTP handlers.
type AuthService interface {
	// SignUp creates a new user account from the signup payload.
	SignUp(ctx context.Context, in models.SignupInput) (models.User, error)
	// Login verifies a username/password pair and returns the user.
	Login(ctx context.Context, username, password string) (*models.User, error)
}

// AuthHandler handles HTTP requests for signup and login.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
	// Sessions issues session tokens after a successful login.
	Sessions *session.Manager
	// Log records infrastructure failures.
	Log *zap.Logger
}

// LoginRequest represents the JSON payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUp handles POST /auth/signup. It expects username, email, password and
// confirmPassword; the passwords must match and the username must be unused.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var in models.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.AuthService.SignUp(r.Context(), in)
	if err != nil {
		respondServiceError(w, h.Log, err, "Signup failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Account created",
		"user":    user,
	})
}

// Login handles POST /auth/login. On success it issues a signed session
// token carrying the user's identity; every failure is reported with the
// same generic message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondServiceError(w, h.Log, err, "Login failed")
		return
	}

	token, err := h.Sessions.Issue(user.ID, user.Username)
	if err != nil {
		h.Log.Error("failed to issue session token", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkova/kidtrack/internal/middleware"
	"github.com/avolkova/kidtrack/internal/models"
)

// ChildService defines the interface for child profile operations required
// by the ChildrenHandler.
type ChildService interface {
	AddChild(ctx context.Context, callerID string, in models.ChildInput) (models.Child, error)
	ChildrenByUser(ctx context.Context, callerID, userID string) ([]models.Child, error)
}

// ChildrenHandler handles HTTP requests for child profiles.
type ChildrenHandler struct {
	Service ChildService
	Log     *zap.Logger
}

// Create handles POST /children. It expects userId, childName, birthDate and
// gender; the birth date must parse to a real calendar date.
func (h *ChildrenHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)

	var in models.ChildInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	child, err := h.Service.AddChild(ctx, callerID, in)
	if err != nil {
		respondServiceError(w, h.Log, err, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Child added successfully",
		"child":   child,
	})
}

// List handles GET /children?userId=. An empty result is a valid, empty array.
func (h *ChildrenHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)
	userID := r.URL.Query().Get("userId")

	children, err := h.Service.ChildrenByUser(ctx, callerID, userID)
	if err != nil {
		respondServiceError(w, h.Log, err, "Failed to fetch children")
		return
	}

	writeJSON(w, http.StatusOK, children)
}

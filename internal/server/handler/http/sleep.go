package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkova/kidtrack/internal/middleware"
	"github.com/avolkova/kidtrack/internal/models"
)

// SleepService defines the interface for sleep log operations required by
// the SleepHandler.
type SleepService interface {
	AddSleepEntry(ctx context.Context, callerID string, in models.SleepInput) (models.SleepEntry, error)
	// SleepEntriesByChild returns entries ordered by date descending.
	SleepEntriesByChild(ctx context.Context, callerID, childID string) ([]models.SleepEntry, error)
}

// SleepHandler handles HTTP requests for sleep logs.
type SleepHandler struct {
	Service SleepService
	Log     *zap.Logger
}

// Create handles POST /sleep.
func (h *SleepHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)

	var in models.SleepInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	entry, err := h.Service.AddSleepEntry(ctx, callerID, in)
	if err != nil {
		respondServiceError(w, h.Log, err, "Failed to add sleep data")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Sleep data added successfully",
		"entry":   entry,
	})
}

// List handles GET /sleep?childId=. Entries come back newest date first.
func (h *SleepHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)
	childID := r.URL.Query().Get("childId")

	entries, err := h.Service.SleepEntriesByChild(ctx, callerID, childID)
	if err != nil {
		respondServiceError(w, h.Log, err, "Failed to fetch sleep data")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkova/kidtrack/internal/middleware"
	"github.com/avolkova/kidtrack/internal/models"
)

// MedicationService defines the interface for medication operations required
// by the MedicationsHandler.
type MedicationService interface {
	AddMedication(ctx context.Context, callerID string, in models.MedicationInput) (models.Medication, error)
	MedicationsByChild(ctx context.Context, callerID, childID string) ([]models.Medication, error)
}

// MedicationsHandler handles HTTP requests for medication logs.
type MedicationsHandler struct {
	Service MedicationService
	Log     *zap.Logger
}

// Create handles POST /medications.
func (h *MedicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)

	var in models.MedicationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	med, err := h.Service.AddMedication(ctx, callerID, in)
	if err != nil {
		respondServiceError(w, h.Log, err, "Failed to add Medication.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":    "Medication added successfully",
		"medication": med,
	})
}

// List handles GET /medications?childId=.
func (h *MedicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	callerID := middleware.GetUserIDFromContext(ctx)
	childID := r.URL.Query().Get("childId")

	meds, err := h.Service.MedicationsByChild(ctx, callerID, childID)
	if err != nil {
		respondServiceError(w, h.Log, err, "Failed to fetch medications")
		return
	}

	writeJSON(w, http.StatusOK, meds)
}

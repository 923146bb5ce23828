// Package http provides the HTTP handlers for the child-health tracking API:
// authentication, child profiles, medication logs and sleep logs.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avolkova/kidtrack/internal/models"
	"github.com/avolkova/kidtrack/internal/service"
)

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error body of the form {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps service-layer errors to status codes. Anything
// unrecognized is a storage or infrastructure failure: the cause is logged
// server-side and the client gets the generic fallback message with a 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, fallback string) {
	var verr models.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrChildNotFound):
		writeError(w, http.StatusNotFound, "child not found")
	case errors.Is(err, service.ErrUserExists):
		writeError(w, http.StatusConflict, "user already exists")
	case errors.Is(err, service.ErrBadCredentials):
		writeError(w, http.StatusUnauthorized, service.ErrBadCredentials.Error())
	default:
		log.Error(fallback, zap.Error(err))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

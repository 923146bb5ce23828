package http

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler reports database connectivity.
type HealthHandler struct {
	DB  *sql.DB
	Log *zap.Logger
}

// Check handles GET /health. It pings the database and reports the result.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.PingContext(r.Context()); err != nil {
		h.Log.Error("health check failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "database unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "database connection ok"})
}

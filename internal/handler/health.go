package handler

import (
	"log/slog"
	"net/http"

	"github.com/deluxetools/menued/internal/catalog"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports readiness: the catalog must serve the latest
// version's materials. The store and transcoder have no external
// dependencies, so the catalog files are the only thing that can be
// missing.
func HandleReadyz(svc catalog.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest := svc.LatestVersion(r.Context())
		if _, err := svc.Materials(r.Context(), latest.ID); err != nil {
			slog.Error("Readiness check failed", "error", err, "version", latest.ID)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "material catalog unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

package handlers

import (
	"fleet-route-service/internal/ports"
	"log"
	"net/http"
)

// HealthHandler reports liveness plus whether the fleet catalogue is loaded.
type HealthHandler struct {
	Fleets ports.FleetRepository
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fleet, err := h.Fleets.Fleet(r.Context())
	if err != nil {
		log.Printf("health: load fleet failed: %v", err)
		writeJSON(w, r, http.StatusServiceUnavailable, map[string]any{"status": "degraded"})
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"policy":   string(fleet.Policy),
		"vehicles": len(fleet.Vehicles),
	})
}

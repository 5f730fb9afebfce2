package handlers

import (
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/ports"
	"log"
	"net/http"
)

// FleetHandler exposes the read-only vehicle catalogue.
type FleetHandler struct {
	Fleets ports.FleetRepository
}

func (h *FleetHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	fleet, err := h.Fleets.Fleet(r.Context())
	if err != nil {
		log.Printf("list fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromFleet(fleet))
}

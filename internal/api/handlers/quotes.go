package handlers

import (
	"errors"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"log"
	"net/http"
)

// QuoteHandler prices a shipment: vehicle selection plus one directions lookup.
type QuoteHandler struct {
	Fleets   ports.FleetRepository
	Provider ports.DirectionsProvider
	Language string
}

func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		if errors.Is(err, errTrailingData) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	destinations := req.Destinations
	if len(destinations) == 0 {
		destinations = domain.SplitDestinations(req.DestinationsText)
	}

	fleet, err := h.Fleets.Fleet(r.Context())
	if err != nil {
		log.Printf("load fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	shipment := domain.ShipmentRequest{
		Origin:       req.Origin,
		Destinations: destinations,
		WeightKg:     req.WeightKg,
	}

	quote, err := services.QuoteShipment(r.Context(), shipment, fleet, h.Provider, h.Language)
	if err != nil {
		f := classifyQuoteError(err)
		metrics.Quotes.WithLabelValues(f.Outcome).Inc()
		if f.Status >= http.StatusInternalServerError {
			log.Printf("quote failed: %v", err)
		}
		writeError(w, r, f.Status, f.Message)
		return
	}

	metrics.Quotes.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, dto.FromQuote(quote))
}

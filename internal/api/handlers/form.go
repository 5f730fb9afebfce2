package handlers

import (
	"embed"
	"fleet-route-service/internal/api/dto"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/ports"
	"fleet-route-service/internal/services"
	"html/template"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
)

//go:embed templates/form.html
var templateFS embed.FS

var formTemplate = template.Must(
	template.New("form.html").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFS, "templates/form.html"),
)

// Default form values shown on first load.
const (
	defaultOrigin       = "20 de Noviembre, Santa María Aztahuacán, Iztapalapa"
	defaultDestinations = "Central de Abasto, Iztapalapa\n19.2842, -99.1358"
	defaultWeight       = "500"
)

type formView struct {
	Origin       string
	Destinations string
	Weight       string
	Failure      *quoteFailure
	Quote        *dto.QuoteResponse
}

// FormHandler serves the interactive quote page. Every submission is one
// independent quote; nothing is kept between requests.
type FormHandler struct {
	Fleets   ports.FleetRepository
	Provider ports.DirectionsProvider
	Language string
}

func (h *FormHandler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.render(w, r, http.StatusOK, formView{
			Origin:       defaultOrigin,
			Destinations: defaultDestinations,
			Weight:       defaultWeight,
		})
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FormHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	view := formView{
		Origin:       r.PostFormValue("origin"),
		Destinations: r.PostFormValue("destinations"),
		Weight:       r.PostFormValue("weight_kg"),
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(view.Weight), 64)
	if err != nil || math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 1 {
		view.Failure = &quoteFailure{Status: http.StatusBadRequest, Message: "load must be a number of at least 1 kg", Warning: true}
		h.render(w, r, http.StatusBadRequest, view)
		return
	}

	fleet, err := h.Fleets.Fleet(r.Context())
	if err != nil {
		log.Printf("load fleet failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	shipment := domain.ShipmentRequest{
		Origin:       view.Origin,
		Destinations: domain.SplitDestinations(view.Destinations),
		WeightKg:     weight,
	}

	quote, err := services.QuoteShipment(r.Context(), shipment, fleet, h.Provider, h.Language)
	if err != nil {
		f := classifyQuoteError(err)
		metrics.Quotes.WithLabelValues(f.Outcome).Inc()
		if f.Status >= http.StatusInternalServerError {
			log.Printf("quote failed: %v", err)
		}
		view.Failure = &f
		h.render(w, r, f.Status, view)
		return
	}

	metrics.Quotes.WithLabelValues("ok").Inc()
	res := dto.FromQuote(quote)
	view.Quote = &res
	h.render(w, r, http.StatusOK, view)
}

func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, status int, view formView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTemplate.Execute(w, view); err != nil {
		log.Printf("render failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

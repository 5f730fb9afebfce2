package api

import (
	"fleet-route-service/internal/api/handlers"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	Language string
	// Inbound requests per second and burst; zero disables limiting.
	RateRPS   float64
	RateBurst int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(fleets ports.FleetRepository, provider ports.DirectionsProvider, opts RouterOptions) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	formHandler := &handlers.FormHandler{Fleets: fleets, Provider: provider, Language: opts.Language}
	quoteHandler := &handlers.QuoteHandler{Fleets: fleets, Provider: provider, Language: opts.Language}
	fleetHandler := &handlers.FleetHandler{Fleets: fleets}
	healthHandler := &handlers.HealthHandler{Fleets: fleets}

	mux.HandleFunc("/", formHandler.Page)
	mux.HandleFunc("/quotes", quoteHandler.Quote)
	mux.HandleFunc("/fleet", fleetHandler.List)
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	var limiter *rate.Limiter
	if opts.RateRPS > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateRPS), burst)
	}

	return requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(limiter, mux)))
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// DirectionsCalls counts mapping service calls by outcome (ok, no_route, error)
	DirectionsCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "directions_calls_total", Help: "Mapping service directions calls by outcome."},
		[]string{"outcome"},
	)
	// DirectionsLatency tracks mapping service latency in seconds
	DirectionsLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "directions_call_duration_seconds", Help: "Mapping service call duration in seconds.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}},
	)
	// RouteCacheLookups counts route cache lookups by backend and result (hit, miss, error)
	RouteCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_cache_lookups_total", Help: "Route cache lookups by backend and result."},
		[]string{"backend", "result"},
	)
	// Quotes counts quote requests by outcome
	Quotes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "quotes_total", Help: "Shipment quotes by outcome."},
		[]string{"outcome"},
	)
)

// RegisterDefault registers the collectors on Registry once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(DirectionsCalls)
		Registry.MustRegister(DirectionsLatency)
		Registry.MustRegister(RouteCacheLookups)
		Registry.MustRegister(Quotes)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

package directions

import (
	"context"
	"encoding/json"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Google Directions API status values.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Summary          string `json:"summary"`
		WaypointOrder    []int  `json:"waypoint_order"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance      textValue `json:"distance"`
			Duration      textValue `json:"duration"`
			StartAddress  string    `json:"start_address"`
			EndAddress    string    `json:"end_address"`
			StartLocation *latLng   `json:"start_location"`
			EndLocation   *latLng   `json:"end_location"`
		} `json:"legs"`
	} `json:"routes"`
}

// GoogleDirectionsProvider implements DirectionsProvider using the Google
// Directions web service.
//
// Each call is a single stateless GET; failures are not retried. An outbound
// token bucket keeps the request rate under the key's quota.
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
	limiter *rate.Limiter
}

type GoogleOptions struct {
	BaseURL string
	Timeout time.Duration
	// Outbound requests per second and burst; zero disables limiting.
	RPS   float64
	Burst int
}

func NewGoogleDirectionsProvider(apiKey string, opts GoogleOptions) (*GoogleDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("google directions: api key is empty: %w", domain.ErrConfiguration)
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return &GoogleDirectionsProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: baseURL,
		limiter: limiter,
	}, nil
}

// Directions resolves the route for req. ZERO_RESULTS and NOT_FOUND yield an
// empty RouteResult; every other failure is a *domain.ServiceError.
func (g *GoogleDirectionsProvider) Directions(
	ctx context.Context,
	req ports.DirectionsRequest,
) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, "google.Directions")(&err)

	start := time.Now()
	outcome := "error"
	defer func() {
		metrics.DirectionsLatency.Observe(time.Since(start).Seconds())
		metrics.DirectionsCalls.WithLabelValues(outcome).Inc()
	}()

	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		return domain.RouteResult{}, errors.New("google directions: origin and destination must be non-empty")
	}

	httpReq, err := g.newRequest(ctx, http.MethodGet, g.endpoint(req))
	if err != nil {
		return domain.RouteResult{}, &domain.ServiceError{Op: "google directions", Err: err}
	}

	resp, err := g.do(ctx, httpReq)
	if err != nil {
		se := &domain.ServiceError{Op: "google directions", Err: err}
		var he *httpStatusError
		if errors.As(err, &he) {
			se.StatusCode = he.Code
		}
		return domain.RouteResult{}, se
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.RouteResult{}, &domain.ServiceError{
			Op:  "google directions",
			Err: fmt.Errorf("decode directions response: %w", err),
		}
	}

	switch decoded.Status {
	case statusOK:
	case statusZeroResults, statusNotFound:
		outcome = "no_route"
		return domain.RouteResult{}, nil
	default:
		msg := decoded.ErrorMessage
		if msg == "" {
			msg = "request rejected"
		}
		return domain.RouteResult{}, &domain.ServiceError{
			Op:     "google directions",
			Status: decoded.Status,
			Err:    errors.New(msg),
		}
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		outcome = "no_route"
		return domain.RouteResult{}, nil
	}

	route := decoded.Routes[0]
	out := domain.RouteResult{
		Legs:          make([]domain.Leg, 0, len(route.Legs)),
		WaypointOrder: route.WaypointOrder,
		Polyline:      route.OverviewPolyline.Points,
		Summary:       route.Summary,
	}
	for _, l := range route.Legs {
		out.Legs = append(out.Legs, domain.Leg{
			DistanceMeters:  l.Distance.Value,
			DistanceText:    l.Distance.Text,
			DurationSeconds: l.Duration.Value,
			DurationText:    l.Duration.Text,
			StartAddress:    l.StartAddress,
			EndAddress:      l.EndAddress,
			Start:           toCoordinates(l.StartLocation),
			End:             toCoordinates(l.EndLocation),
		})
	}

	outcome = "ok"
	return out, nil
}

// endpoint builds the directions URL. Waypoints are pipe-separated and
// prefixed with optimize:true when reordering is allowed.
func (g *GoogleDirectionsProvider) endpoint(req ports.DirectionsRequest) string {
	mode := req.Mode
	if mode == "" {
		mode = ports.TravelModeDriving
	}

	q := url.Values{}
	q.Set("origin", req.Origin)
	q.Set("destination", req.Destination)
	q.Set("mode", mode)
	if req.Language != "" {
		q.Set("language", req.Language)
	}
	if len(req.Waypoints) > 0 {
		wps := strings.Join(req.Waypoints, "|")
		if req.OptimizeWaypoints {
			wps = "optimize:true|" + wps
		}
		q.Set("waypoints", wps)
	}
	q.Set("key", g.apiKey)

	return g.baseURL + "/maps/api/directions/json?" + q.Encode()
}

func toCoordinates(p *latLng) *domain.Coordinates {
	if p == nil {
		return nil
	}
	return &domain.Coordinates{Lon: p.Lng, Lat: p.Lat}
}

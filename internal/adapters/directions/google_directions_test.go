package directions

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const okBody = `{
  "status": "OK",
  "routes": [{
    "summary": "Eje 6 Sur",
    "waypoint_order": [1, 0],
    "overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC"},
    "legs": [
      {"distance": {"text": "1.2 km", "value": 1200}, "duration": {"text": "4 min", "value": 240},
       "start_address": "Hub", "end_address": "B",
       "start_location": {"lat": 19.35, "lng": -99.02}, "end_location": {"lat": 19.36, "lng": -99.05}},
      {"distance": {"text": "0.8 km", "value": 800}, "duration": {"text": "3 min", "value": 180},
       "start_address": "B", "end_address": "C",
       "start_location": {"lat": 19.36, "lng": -99.05}, "end_location": {"lat": 19.37, "lng": -99.08}}
    ]
  }]
}`

func newTestProvider(t *testing.T, h http.HandlerFunc) *GoogleDirectionsProvider {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := NewGoogleDirectionsProvider("test-key", GoogleOptions{BaseURL: srv.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func testRequest() ports.DirectionsRequest {
	return ports.DirectionsRequest{
		Origin:            "Hub",
		Destination:       "C",
		Waypoints:         []string{"A", "B"},
		OptimizeWaypoints: true,
		Mode:              ports.TravelModeDriving,
		Language:          "es",
	}
}

func TestGoogleDirectionsOK(t *testing.T) {
	var gotQuery map[string]string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/maps/api/directions/json" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		gotQuery = map[string]string{
			"origin":      q.Get("origin"),
			"destination": q.Get("destination"),
			"waypoints":   q.Get("waypoints"),
			"mode":        q.Get("mode"),
			"language":    q.Get("language"),
			"key":         q.Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(okBody))
	})

	route, err := p.Directions(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"origin":      "Hub",
		"destination": "C",
		"waypoints":   "optimize:true|A|B",
		"mode":        "driving",
		"language":    "es",
		"key":         "test-key",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}

	if len(route.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(route.Legs))
	}
	if route.TotalDistanceMeters() != 2000 {
		t.Fatalf("distance = %d, want 2000", route.TotalDistanceMeters())
	}
	if route.Legs[0].StartAddress != "Hub" || route.Legs[1].EndAddress != "C" {
		t.Fatalf("unexpected addresses: %+v", route.Legs)
	}
	if route.Legs[0].Start == nil || route.Legs[0].Start.Lat != 19.35 {
		t.Fatalf("start location = %+v, want lat 19.35", route.Legs[0].Start)
	}
	if len(route.WaypointOrder) != 2 || route.WaypointOrder[0] != 1 {
		t.Fatalf("waypoint order = %v, want [1 0]", route.WaypointOrder)
	}
	if route.Polyline == "" {
		t.Fatal("polyline missing")
	}
}

func TestGoogleDirectionsOmitsEmptyWaypoints(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.URL.Query()["waypoints"]; ok {
			t.Errorf("waypoints should be omitted, got %q", r.URL.Query().Get("waypoints"))
		}
		_, _ = w.Write([]byte(okBody))
	})

	req := testRequest()
	req.Waypoints = nil
	if _, err := p.Directions(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGoogleDirectionsNoRoute(t *testing.T) {
	for _, status := range []string{"ZERO_RESULTS", "NOT_FOUND"} {
		p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":"` + status + `","routes":[]}`))
		})

		route, err := p.Directions(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", status, err)
		}
		if !route.Empty() {
			t.Fatalf("%s: route should be empty, got %+v", status, route)
		}
	}
}

func TestGoogleDirectionsRequestDenied(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","routes":[]}`))
	})

	_, err := p.Directions(context.Background(), testRequest())

	var se *domain.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *domain.ServiceError", err)
	}
	if se.Status != "REQUEST_DENIED" {
		t.Fatalf("status = %q, want REQUEST_DENIED", se.Status)
	}
	if !strings.Contains(err.Error(), "API key is invalid") {
		t.Fatalf("err = %v, want provider message", err)
	}
}

func TestGoogleDirectionsHTTPErrorIsNotRetried(t *testing.T) {
	calls := 0
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "upstream unavailable", http.StatusServiceUnavailable)
	})

	_, err := p.Directions(context.Background(), testRequest())

	var se *domain.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *domain.ServiceError", err)
	}
	if se.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status code = %d, want 503", se.StatusCode)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestGoogleDirectionsMalformedBody(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := p.Directions(context.Background(), testRequest())

	var se *domain.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *domain.ServiceError", err)
	}
}

func TestGoogleDirectionsTransportErrorRedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	p, err := NewGoogleDirectionsProvider("secret-key", GoogleOptions{BaseURL: base, Timeout: time.Second})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.Directions(context.Background(), testRequest())

	var se *domain.ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *domain.ServiceError", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestGoogleDirectionsTimeoutKeepsCause(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(500 * time.Millisecond):
		}
	}))
	t.Cleanup(srv.Close)

	p, err := NewGoogleDirectionsProvider("secret-key", GoogleOptions{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	_, err = p.Directions(context.Background(), testRequest())

	var ne net.Error
	if !errors.As(err, &ne) || !ne.Timeout() {
		t.Fatalf("err = %v, want a timeout net.Error in the chain", err)
	}
	if strings.Contains(err.Error(), "secret-key") {
		t.Fatalf("api key leaked into error: %v", err)
	}
}

func TestNewGoogleDirectionsProviderRequiresKey(t *testing.T) {
	_, err := NewGoogleDirectionsProvider(" ", GoogleOptions{})
	if !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("err = %v, want ErrConfiguration", err)
	}
}

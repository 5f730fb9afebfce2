package directions

import (
	"context"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"sync"
)

// MockDirectionsProvider returns a fixed route or error and records requests.
type MockDirectionsProvider struct {
	Route domain.RouteResult
	Err   error

	mu       sync.Mutex
	requests []ports.DirectionsRequest
}

func NewMockDirectionsProvider(meters ...int) *MockDirectionsProvider {
	legs := make([]domain.Leg, 0, len(meters))
	for _, m := range meters {
		legs = append(legs, domain.Leg{DistanceMeters: m})
	}
	return &MockDirectionsProvider{Route: domain.RouteResult{Legs: legs}}
}

func (p *MockDirectionsProvider) Directions(ctx context.Context, req ports.DirectionsRequest) (domain.RouteResult, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.Err != nil {
		return domain.RouteResult{}, p.Err
	}
	return p.Route, nil
}

// Requests returns the requests received so far.
func (p *MockDirectionsProvider) Requests() []ports.DirectionsRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ports.DirectionsRequest(nil), p.requests...)
}

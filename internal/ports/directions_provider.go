package ports

import (
	"context"
	"fleet-route-service/internal/domain"
)

// TravelModeDriving is the only travel mode the service requests.
const TravelModeDriving = "driving"

// Parameters of a single directions lookup.
type DirectionsRequest struct {
	Origin            string
	Destination       string
	Waypoints         []string
	OptimizeWaypoints bool
	Mode              string
	Language          string
}

// Contract for resolving a route through ordered stops.
type DirectionsProvider interface {
	// Return the first route for the request. An empty result (no legs)
	// means the service could not resolve the addresses.
	Directions(ctx context.Context, req DirectionsRequest) (domain.RouteResult, error)
}

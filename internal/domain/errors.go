package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks missing or invalid startup configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidShipment marks a shipment request that fails validation.
	ErrInvalidShipment = errors.New("invalid shipment")

	// ErrNoFeasibleVehicle is returned when the weight exceeds every vehicle's capacity.
	ErrNoFeasibleVehicle = errors.New("no feasible vehicle: load too heavy for a single vehicle")

	// ErrNoRouteFound is returned when the mapping service resolves no route.
	ErrNoRouteFound = errors.New("no route found for the given addresses")
)

// ServiceError reports a failed call to the mapping service
// (network, authentication, quota or an unexpected response).
type ServiceError struct {
	Op         string
	StatusCode int
	Status     string
	Err        error
}

func (e *ServiceError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: mapping service http %d: %v", e.Op, e.StatusCode, e.Err)
	case e.Status != "":
		return fmt.Sprintf("%s: mapping service status %s: %v", e.Op, e.Status, e.Err)
	default:
		return fmt.Sprintf("%s: mapping service: %v", e.Op, e.Err)
	}
}

func (e *ServiceError) Unwrap() error { return e.Err }

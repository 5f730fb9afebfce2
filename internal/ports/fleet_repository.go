package ports

import (
	"context"
	"fleet-route-service/internal/domain"
)

// Port: a boundary for retrieving the fleet catalogue.
type FleetRepository interface {
	// Retrieve the catalogue and the policy used to rank it.
	Fleet(ctx context.Context) (domain.Fleet, error)
}

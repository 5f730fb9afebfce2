package ports

import (
	"context"
	"fleet-route-service/internal/domain"
)

// Port: a keyed store of previously resolved routes.
type RouteCache interface {
	// Return the cached route for key; ok is false on a miss or expired entry.
	Get(ctx context.Context, key string) (route domain.RouteResult, ok bool, err error)
	// Store a route under key.
	Put(ctx context.Context, key string, route domain.RouteResult) error
}

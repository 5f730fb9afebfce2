package directions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/ports"
	"log"
	"strconv"
	"strings"
)

// CachedDirectionsProvider serves repeated directions lookups from a
// RouteCache and falls through to the wrapped provider on a miss.
// Cache errors are logged and never fail the lookup; empty routes are not cached.
type CachedDirectionsProvider struct {
	next  ports.DirectionsProvider
	cache ports.RouteCache
}

func NewCachedDirectionsProvider(next ports.DirectionsProvider, cache ports.RouteCache) *CachedDirectionsProvider {
	return &CachedDirectionsProvider{next: next, cache: cache}
}

func (c *CachedDirectionsProvider) Directions(
	ctx context.Context,
	req ports.DirectionsRequest,
) (domain.RouteResult, error) {
	if c.cache == nil {
		return c.next.Directions(ctx, req)
	}

	key := CacheKey(req)

	route, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		log.Printf("route cache read failed: %v", err)
	} else if ok {
		return route, nil
	}

	route, err = c.next.Directions(ctx, req)
	if err != nil {
		return domain.RouteResult{}, err
	}

	if !route.Empty() {
		if err := c.cache.Put(ctx, key, route); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return route, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CacheKey derives a stable key from every request field that affects the route.
func CacheKey(req ports.DirectionsRequest) string {
	parts := make([]string, 0, 5+len(req.Waypoints))
	parts = append(parts,
		normalize(req.Origin),
		normalize(req.Destination),
		strconv.FormatBool(req.OptimizeWaypoints),
		req.Mode,
		req.Language,
	)
	for _, w := range req.Waypoints {
		parts = append(parts, normalize(w))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}

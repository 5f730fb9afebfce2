package cache

import (
	"encoding/json"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/metrics"
	"fmt"
)

func encodeRoute(route domain.RouteResult) ([]byte, error) {
	b, err := json.Marshal(route)
	if err != nil {
		return nil, fmt.Errorf("encode route: %w", err)
	}
	return b, nil
}

func decodeRoute(b []byte) (domain.RouteResult, error) {
	var route domain.RouteResult
	if err := json.Unmarshal(b, &route); err != nil {
		return domain.RouteResult{}, fmt.Errorf("decode route: %w", err)
	}
	return route, nil
}

func recordLookup(backend string, hit bool, err error) {
	result := "miss"
	switch {
	case err != nil:
		result = "error"
	case hit:
		result = "hit"
	}
	metrics.RouteCacheLookups.WithLabelValues(backend, result).Inc()
}

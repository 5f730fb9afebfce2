package services

import (
	"fleet-route-service/internal/domain"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/twpayne/go-polyline"
)

// attachGeometry decodes the route's overview polyline into the quote path
// and records the path bounds plus the straight-line distance between the
// route's endpoints.
func attachGeometry(q *domain.Quote, route domain.RouteResult) error {
	if from, to, ok := endpoints(q, route); ok {
		km := geo.DistanceHaversine(from.Point(), to.Point()) / 1000
		q.StraightLineKm = &km
	}

	if route.Polyline == "" {
		return nil
	}

	path, err := DecodePath(route.Polyline)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return nil
	}

	bound := path.Bound()
	q.Path = path
	q.Bound = &bound
	return nil
}

// DecodePath decodes a Google encoded polyline into an orb line string.
// The polyline stores [lat, lng] pairs; orb points are [lon, lat].
func DecodePath(encoded string) (orb.LineString, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode path: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("decode path: %d trailing bytes", len(rest))
	}

	path := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		path = append(path, orb.Point{c[1], c[0]})
	}
	return path, nil
}

// endpoints prefers the locations reported on the legs and falls back to
// origin and destination when they were typed as "lat,long".
func endpoints(q *domain.Quote, route domain.RouteResult) (from, to domain.Coordinates, ok bool) {
	if len(route.Legs) > 0 {
		first, last := route.Legs[0], route.Legs[len(route.Legs)-1]
		if first.Start != nil && last.End != nil {
			return *first.Start, *last.End, true
		}
	}

	from, okFrom := domain.ParseCoordinates(q.Origin)
	to, okTo := domain.ParseCoordinates(q.FinalDestination)
	return from, to, okFrom && okTo
}

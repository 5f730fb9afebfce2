package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates (longitude, latitude).
type Coordinates struct {
	Lon float64
	Lat float64
}

// Point returns the coordinates as an orb point ([lon, lat]).
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// ParseCoordinates reads a "lat,long" string such as "19.2842, -99.1358".
// It reports false for anything that is not a pair of in-range numbers,
// which callers treat as a free-text address.
func ParseCoordinates(s string) (Coordinates, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinates{}, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinates{}, false
	}

	if math.IsNaN(lat) || math.IsNaN(lon) {
		return Coordinates{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Coordinates{}, false
	}

	return Coordinates{Lon: lon, Lat: lat}, true
}

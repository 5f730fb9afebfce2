package domain

// Leg is one segment of a route between two consecutive stops,
// as returned by the mapping service.
type Leg struct {
	DistanceMeters  int
	DistanceText    string
	DurationSeconds int
	DurationText    string
	StartAddress    string
	EndAddress      string
	Start           *Coordinates
	End             *Coordinates
}

// RouteResult is the first route alternative returned for a directions request.
// WaypointOrder is the service's visiting order of the request waypoints
// when optimization was requested. Polyline is the encoded overview path.
// It is immutable planning data and contains no side effects.
type RouteResult struct {
	Legs          []Leg
	WaypointOrder []int
	Polyline      string
	Summary       string
}

func (r RouteResult) Empty() bool { return len(r.Legs) == 0 }

func (r RouteResult) TotalDistanceMeters() int {
	total := 0
	for _, l := range r.Legs {
		total += l.DistanceMeters
	}
	return total
}

// TotalKm is the summed leg distance in kilometers.
func (r RouteResult) TotalKm() float64 {
	return float64(r.TotalDistanceMeters()) / 1000
}

func (r RouteResult) TotalDurationSeconds() int {
	total := 0
	for _, l := range r.Legs {
		total += l.DurationSeconds
	}
	return total
}

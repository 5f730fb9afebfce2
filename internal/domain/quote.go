package domain

import "github.com/paulmach/orb"

// Quote is the outcome of one shipment request: the chosen vehicle,
// the route totals, the estimated cost and the navigation link.
type Quote struct {
	Vehicle              Vehicle
	Policy               SelectionPolicy
	Origin               string
	FinalDestination     string
	Waypoints            []string
	WaypointOrder        []int
	TotalDistanceMeters  int
	TotalKm              float64
	TotalDurationSeconds int
	Cost                 float64
	Currency             string
	// Mapping service label for the route, usually the main road.
	Summary        string
	NavigationURL  string
	Legs           []Leg
	Path           orb.LineString
	Bound          *orb.Bound
	StraightLineKm *float64
}

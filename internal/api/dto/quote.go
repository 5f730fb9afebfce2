package dto

type QuoteRequest struct {
	Origin       string   `json:"origin"`
	Destinations []string `json:"destinations"`
	// Newline-separated alternative to Destinations, as typed into the form.
	DestinationsText string  `json:"destinations_text"`
	WeightKg         float64 `json:"weight_kg"`
}

type VehicleResponse struct {
	Name       string  `json:"name"`
	CapacityKg float64 `json:"capacity_kg"`
	CostMetric float64 `json:"cost_metric"`
}

type LegResponse struct {
	StartAddress    string `json:"start_address"`
	EndAddress      string `json:"end_address"`
	DistanceMeters  int    `json:"distance_meters"`
	DistanceText    string `json:"distance_text"`
	DurationSeconds int    `json:"duration_seconds"`
	DurationText    string `json:"duration_text"`
}

type BoundResponse struct {
	MinLon float64 `json:"min_lon"`
	MinLat float64 `json:"min_lat"`
	MaxLon float64 `json:"max_lon"`
	MaxLat float64 `json:"max_lat"`
}

type QuoteResponse struct {
	Vehicle              VehicleResponse `json:"vehicle"`
	Policy               string          `json:"policy"`
	Origin               string          `json:"origin"`
	Destination          string          `json:"destination"`
	Waypoints            []string        `json:"waypoints"`
	WaypointOrder        []int           `json:"waypoint_order,omitempty"`
	TotalDistanceMeters  int             `json:"total_distance_meters"`
	TotalKm              float64         `json:"total_km"`
	TotalDurationSeconds int             `json:"total_duration_seconds"`
	Cost                 float64         `json:"cost"`
	Currency             string          `json:"currency"`
	Summary              string          `json:"summary,omitempty"`
	NavigationURL        string          `json:"navigation_url"`
	Legs                 []LegResponse   `json:"legs"`
	Path                 [][2]float64    `json:"path,omitempty"`
	Bound                *BoundResponse  `json:"bound,omitempty"`
	StraightLineKm       *float64        `json:"straight_line_km,omitempty"`
}

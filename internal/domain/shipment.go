package domain

import (
	"fmt"
	"math"
	"strings"
)

// ShipmentRequest is one user submission: a pickup point, the ordered stops
// and the total cargo weight. Origin and destinations are free-text
// addresses or "lat,long" strings.
type ShipmentRequest struct {
	Origin       string
	Destinations []string
	WeightKg     float64
}

// SplitDestinations turns a multi-line text block into destinations,
// one per line, trimming whitespace and dropping blank lines.
func SplitDestinations(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Normalize trims the origin and destinations and drops blank destinations.
func (r ShipmentRequest) Normalize() ShipmentRequest {
	dests := make([]string, 0, len(r.Destinations))
	for _, d := range r.Destinations {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		dests = append(dests, d)
	}

	return ShipmentRequest{
		Origin:       strings.TrimSpace(r.Origin),
		Destinations: dests,
		WeightKg:     r.WeightKg,
	}
}

func (r ShipmentRequest) Validate() error {
	if r.Origin == "" {
		return fmt.Errorf("origin is required: %w", ErrInvalidShipment)
	}
	if len(r.Destinations) == 0 {
		return fmt.Errorf("at least one destination is required: %w", ErrInvalidShipment)
	}
	if math.IsNaN(r.WeightKg) || math.IsInf(r.WeightKg, 0) {
		return fmt.Errorf("weight must be a finite number: %w", ErrInvalidShipment)
	}
	if r.WeightKg <= 0 {
		return fmt.Errorf("weight must be positive, got %g: %w", r.WeightKg, ErrInvalidShipment)
	}
	return nil
}

// FinalDestination is the last destination; the route ends there.
func (r ShipmentRequest) FinalDestination() string {
	if len(r.Destinations) == 0 {
		return ""
	}
	return r.Destinations[len(r.Destinations)-1]
}

// Waypoints are the intermediate stops: every destination but the last.
// It returns nil for a single destination.
func (r ShipmentRequest) Waypoints() []string {
	if len(r.Destinations) < 2 {
		return nil
	}
	return r.Destinations[:len(r.Destinations)-1]
}

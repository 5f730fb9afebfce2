package domain

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestSplitDestinations(t *testing.T) {
	got := SplitDestinations("  Central de Abasto, Iztapalapa \r\n\n19.2842, -99.1358\n   \n")
	want := []string{"Central de Abasto, Iztapalapa", "19.2842, -99.1358"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitDestinations = %q, want %q", got, want)
	}

	if got := SplitDestinations(" \n\n "); len(got) != 0 {
		t.Fatalf("blank text gave %q, want none", got)
	}
}

func TestShipmentValidate(t *testing.T) {
	tests := []struct {
		name string
		req  ShipmentRequest
		ok   bool
	}{
		{"valid", ShipmentRequest{Origin: "Hub", Destinations: []string{"A"}, WeightKg: 1}, true},
		{"blank origin", ShipmentRequest{Origin: "  ", Destinations: []string{"A"}, WeightKg: 1}, false},
		{"only blank destinations", ShipmentRequest{Origin: "Hub", Destinations: []string{"", " "}, WeightKg: 1}, false},
		{"zero weight", ShipmentRequest{Origin: "Hub", Destinations: []string{"A"}, WeightKg: 0}, false},
		{"nan weight", ShipmentRequest{Origin: "Hub", Destinations: []string{"A"}, WeightKg: math.NaN()}, false},
		{"infinite weight", ShipmentRequest{Origin: "Hub", Destinations: []string{"A"}, WeightKg: math.Inf(1)}, false},
		{"negative weight", ShipmentRequest{Origin: "Hub", Destinations: []string{"A"}, WeightKg: -5}, false},
	}

	for _, tt := range tests {
		err := tt.req.Normalize().Validate()
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidShipment) {
			t.Errorf("%s: err = %v, want ErrInvalidShipment", tt.name, err)
		}
	}
}

func TestShipmentWaypoints(t *testing.T) {
	one := ShipmentRequest{Destinations: []string{"Y"}}
	if one.Waypoints() != nil || one.FinalDestination() != "Y" {
		t.Fatalf("single destination: waypoints=%v final=%q", one.Waypoints(), one.FinalDestination())
	}

	three := ShipmentRequest{Destinations: []string{"A", "B", "C"}}
	if !reflect.DeepEqual(three.Waypoints(), []string{"A", "B"}) || three.FinalDestination() != "C" {
		t.Fatalf("three destinations: waypoints=%v final=%q", three.Waypoints(), three.FinalDestination())
	}
}

func TestParseCoordinates(t *testing.T) {
	c, ok := ParseCoordinates("19.2842, -99.1358")
	if !ok || c.Lat != 19.2842 || c.Lon != -99.1358 {
		t.Fatalf("ParseCoordinates = %+v ok=%v", c, ok)
	}

	for _, s := range []string{"Central de Abasto, Iztapalapa", "91, 10", "10, 181", "NaN, 5", "5, nan", "Inf, 0", "1,2,3", ""} {
		if _, ok := ParseCoordinates(s); ok {
			t.Errorf("ParseCoordinates(%q) accepted", s)
		}
	}
}

package domain

import (
	"fmt"
	"strings"
)

// SelectionPolicy decides how a vehicle's CostMetric is read.
type SelectionPolicy string

const (
	// PolicyCostPerKm reads CostMetric as currency per kilometer; lower wins.
	PolicyCostPerKm SelectionPolicy = "cost_per_km"
	// PolicyFuelPerformance reads CostMetric as kilometers per liter; higher wins.
	PolicyFuelPerformance SelectionPolicy = "fuel_performance"
)

// DefaultPricePerLiter is the fuel price used by the fuel-performance policy
// when the catalogue does not set one.
const DefaultPricePerLiter = 24.0

// DefaultCurrency labels costs when the catalogue does not set a currency.
const DefaultCurrency = "MXN"

// A Vehicle is one immutable row of the fleet catalogue.
type Vehicle struct {
	Name       string
	CapacityKg float64
	CostMetric float64
}

// Fleet is the read-only catalogue plus the policy used to rank it.
type Fleet struct {
	Policy        SelectionPolicy
	PricePerLiter float64
	Currency      string
	Vehicles      []Vehicle
}

// DefaultFleet returns the built-in six-vehicle cost-per-km catalogue.
func DefaultFleet() Fleet {
	return Fleet{
		Policy:   PolicyCostPerKm,
		Currency: DefaultCurrency,
		Vehicles: []Vehicle{
			{Name: "ISUZU 2", CapacityKg: 6500, CostMetric: 3.42},
			{Name: "RAM 4000", CapacityKg: 3500, CostMetric: 6.31},
			{Name: "ISUZU 1", CapacityKg: 4000, CostMetric: 3.68},
			{Name: "VW CRAFTER", CapacityKg: 1000, CostMetric: 1.76},
			{Name: "URVAN PANEL", CapacityKg: 1350, CostMetric: 1.90},
			{Name: "CHEVROLET TORNADO", CapacityKg: 650, CostMetric: 1.70},
		},
	}
}

// ParseSelectionPolicy accepts the policy names used in catalogue files.
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch SelectionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyCostPerKm:
		return PolicyCostPerKm, nil
	case PolicyFuelPerformance:
		return PolicyFuelPerformance, nil
	default:
		return "", fmt.Errorf("unknown selection policy %q", s)
	}
}

// Validate checks the catalogue invariants: at least one vehicle, every
// vehicle named with positive capacity and metric, and a positive fuel price
// for the fuel-performance policy.
func (f Fleet) Validate() error {
	if len(f.Vehicles) == 0 {
		return fmt.Errorf("validate fleet: catalogue must not be empty: %w", ErrConfiguration)
	}

	if _, err := ParseSelectionPolicy(string(f.Policy)); err != nil {
		return fmt.Errorf("validate fleet: %v: %w", err, ErrConfiguration)
	}

	if f.Policy == PolicyFuelPerformance && f.PricePerLiter <= 0 {
		return fmt.Errorf("validate fleet: price per liter must be positive: %w", ErrConfiguration)
	}

	for i, v := range f.Vehicles {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("validate fleet: vehicle at index %d: name must not be empty: %w", i+1, ErrConfiguration)
		}
		if v.CapacityKg <= 0 {
			return fmt.Errorf("validate fleet: vehicle %q: capacity must be positive: %w", v.Name, ErrConfiguration)
		}
		if v.CostMetric <= 0 {
			return fmt.Errorf("validate fleet: vehicle %q: cost metric must be positive: %w", v.Name, ErrConfiguration)
		}
	}

	return nil
}

package repositories

import (
	"context"
	"fleet-route-service/internal/domain"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// StaticFleetRepository serves a catalogue fixed at construction.
type StaticFleetRepository struct{ fleet domain.Fleet }

func NewStaticFleetRepository(fleet domain.Fleet) *StaticFleetRepository {
	return &StaticFleetRepository{fleet: cloneFleet(fleet)}
}

// Return a copy so callers cannot mutate the catalogue.
func (s *StaticFleetRepository) Fleet(ctx context.Context) (domain.Fleet, error) {
	return cloneFleet(s.fleet), nil
}

type VehicleSeed struct {
	Name       string  `yaml:"name"`
	CapacityKg float64 `yaml:"capacity_kg"`
	CostMetric float64 `yaml:"cost_metric"`
}

type FleetSeed struct {
	Policy        string        `yaml:"policy"`
	PricePerLiter float64       `yaml:"price_per_liter"`
	Currency      string        `yaml:"currency"`
	Vehicles      []VehicleSeed `yaml:"vehicles"`
}

// Read and validate a fleet catalogue from a YAML file:
//
//	policy: fuel_performance
//	price_per_liter: 24
//	currency: MXN
//	vehicles:
//	  - {name: ISUZU 2, capacity_kg: 6500, cost_metric: 7.5}
func LoadFleetYAML(path string) (domain.Fleet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Fleet{}, fmt.Errorf("load fleet: read %q: %w", path, err)
	}
	return ParseFleetYAML(b)
}

func ParseFleetYAML(b []byte) (domain.Fleet, error) {
	var seed FleetSeed
	if err := yaml.Unmarshal(b, &seed); err != nil {
		return domain.Fleet{}, fmt.Errorf("load fleet: parse yaml: %v: %w", err, domain.ErrConfiguration)
	}

	policy, err := domain.ParseSelectionPolicy(seed.Policy)
	if err != nil {
		return domain.Fleet{}, fmt.Errorf("load fleet: %v: %w", err, domain.ErrConfiguration)
	}

	fleet := domain.Fleet{
		Policy:        policy,
		PricePerLiter: seed.PricePerLiter,
		Currency:      strings.TrimSpace(seed.Currency),
		Vehicles:      make([]domain.Vehicle, 0, len(seed.Vehicles)),
	}
	if fleet.Currency == "" {
		fleet.Currency = domain.DefaultCurrency
	}
	if policy == domain.PolicyFuelPerformance && fleet.PricePerLiter == 0 {
		fleet.PricePerLiter = domain.DefaultPricePerLiter
	}

	for _, v := range seed.Vehicles {
		fleet.Vehicles = append(fleet.Vehicles, domain.Vehicle{
			Name:       strings.TrimSpace(v.Name),
			CapacityKg: v.CapacityKg,
			CostMetric: v.CostMetric,
		})
	}

	if err := fleet.Validate(); err != nil {
		return domain.Fleet{}, fmt.Errorf("load fleet: %w", err)
	}

	return fleet, nil
}

func cloneFleet(f domain.Fleet) domain.Fleet {
	f.Vehicles = append([]domain.Vehicle(nil), f.Vehicles...)
	return f
}

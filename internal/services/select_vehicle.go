package services

import (
	"fleet-route-service/internal/domain"
	"fmt"
)

// SelectVehicle picks the vehicle that can carry weightKg at the best cost metric.
//
// Feasible vehicles are those with CapacityKg >= weightKg. Among them the
// cost-per-km policy takes the lowest metric and the fuel-performance policy
// the highest. Ties keep the first vehicle in catalogue order.
func SelectVehicle(fleet domain.Fleet, weightKg float64) (domain.Vehicle, error) {
	feasible := make([]domain.Vehicle, 0, len(fleet.Vehicles))
	for _, v := range fleet.Vehicles {
		if v.CapacityKg >= weightKg {
			feasible = append(feasible, v)
		}
	}

	if len(feasible) == 0 {
		return domain.Vehicle{}, fmt.Errorf("select vehicle for %g kg: %w", weightKg, domain.ErrNoFeasibleVehicle)
	}

	best := feasible[0]
	for _, candidate := range feasible[1:] {
		if better(fleet.Policy, candidate.CostMetric, best.CostMetric) {
			best = candidate
		}
	}

	return best, nil
}

// better reports whether metric a strictly beats b under policy.
func better(policy domain.SelectionPolicy, a, b float64) bool {
	if policy == domain.PolicyFuelPerformance {
		return a > b
	}
	return a < b
}

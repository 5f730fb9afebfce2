package dto

import (
	"fleet-route-service/internal/domain"
	"math"
)

// Round2 rounds to two decimals for display.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func FromVehicle(v domain.Vehicle) VehicleResponse {
	return VehicleResponse{Name: v.Name, CapacityKg: v.CapacityKg, CostMetric: v.CostMetric}
}

func FromFleet(f domain.Fleet) FleetResponse {
	res := FleetResponse{
		Policy:   string(f.Policy),
		Currency: f.Currency,
		Vehicles: make([]VehicleResponse, 0, len(f.Vehicles)),
	}
	if f.Policy == domain.PolicyFuelPerformance {
		res.PricePerLiter = f.PricePerLiter
	}
	for _, v := range f.Vehicles {
		res.Vehicles = append(res.Vehicles, FromVehicle(v))
	}
	return res
}

func FromQuote(q *domain.Quote) QuoteResponse {
	res := QuoteResponse{
		Vehicle:              FromVehicle(q.Vehicle),
		Policy:               string(q.Policy),
		Origin:               q.Origin,
		Destination:          q.FinalDestination,
		Waypoints:            append([]string{}, q.Waypoints...),
		WaypointOrder:        q.WaypointOrder,
		TotalDistanceMeters:  q.TotalDistanceMeters,
		TotalKm:              Round2(q.TotalKm),
		TotalDurationSeconds: q.TotalDurationSeconds,
		Cost:                 Round2(q.Cost),
		Currency:             q.Currency,
		Summary:              q.Summary,
		NavigationURL:        q.NavigationURL,
		Legs:                 make([]LegResponse, 0, len(q.Legs)),
	}

	for _, l := range q.Legs {
		res.Legs = append(res.Legs, LegResponse{
			StartAddress:    l.StartAddress,
			EndAddress:      l.EndAddress,
			DistanceMeters:  l.DistanceMeters,
			DistanceText:    l.DistanceText,
			DurationSeconds: l.DurationSeconds,
			DurationText:    l.DurationText,
		})
	}

	for _, p := range q.Path {
		res.Path = append(res.Path, [2]float64{p.Lon(), p.Lat()})
	}

	if q.Bound != nil {
		res.Bound = &BoundResponse{
			MinLon: q.Bound.Min.Lon(),
			MinLat: q.Bound.Min.Lat(),
			MaxLon: q.Bound.Max.Lon(),
			MaxLat: q.Bound.Max.Lat(),
		}
	}

	if q.StraightLineKm != nil {
		km := Round2(*q.StraightLineKm)
		res.StraightLineKm = &km
	}

	return res
}

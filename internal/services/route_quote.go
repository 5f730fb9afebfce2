package services

import (
	"context"
	"errors"
	"fleet-route-service/internal/domain"
	"fleet-route-service/internal/platform/obs"
	"fleet-route-service/internal/ports"
	"fmt"
	"net/url"
	"strings"
)

const navigationBaseURL = "https://www.google.com/maps/dir/?api=1"

// BuildDirectionsRequest maps a shipment onto a directions lookup.
// The last destination ends the route; the others become waypoints that the
// mapping service may reorder.
func BuildDirectionsRequest(shipment domain.ShipmentRequest, language string) ports.DirectionsRequest {
	return ports.DirectionsRequest{
		Origin:            shipment.Origin,
		Destination:       shipment.FinalDestination(),
		Waypoints:         shipment.Waypoints(),
		OptimizeWaypoints: true,
		Mode:              ports.TravelModeDriving,
		Language:          language,
	}
}

// EstimateCost prices totalKm for vehicle under the fleet's policy:
// km * cost-per-km, or (km / km-per-liter) * price-per-liter.
func EstimateCost(fleet domain.Fleet, vehicle domain.Vehicle, totalKm float64) float64 {
	if fleet.Policy == domain.PolicyFuelPerformance {
		price := fleet.PricePerLiter
		if price <= 0 {
			price = domain.DefaultPricePerLiter
		}
		return (totalKm / vehicle.CostMetric) * price
	}
	return totalKm * vehicle.CostMetric
}

// NavigationURL builds the Google Maps deep link for the route. The
// waypoints parameter is omitted when there are no intermediate stops.
func NavigationURL(origin, destination string, waypoints []string) string {
	var b strings.Builder
	b.WriteString(navigationBaseURL)
	b.WriteString("&origin=")
	b.WriteString(url.QueryEscape(origin))
	b.WriteString("&destination=")
	b.WriteString(url.QueryEscape(destination))
	if len(waypoints) > 0 {
		b.WriteString("&waypoints=")
		b.WriteString(url.QueryEscape(strings.Join(waypoints, "|")))
	}
	b.WriteString("&travelmode=driving")
	return b.String()
}

// QuoteShipment selects a vehicle, resolves the route and prices it.
//
// Vehicle selection runs before the mapping call so an overweight load never
// costs an external request. Provider failures are returned as
// *domain.ServiceError; an empty route is domain.ErrNoRouteFound.
func QuoteShipment(
	ctx context.Context,
	shipment domain.ShipmentRequest,
	fleet domain.Fleet,
	provider ports.DirectionsProvider,
	language string,
) (_ *domain.Quote, err error) {
	defer obs.Time(ctx, "quote.QuoteShipment")(&err)

	shipment = shipment.Normalize()
	if err := shipment.Validate(); err != nil {
		return nil, fmt.Errorf("quote shipment: %w", err)
	}

	vehicle, err := SelectVehicle(fleet, shipment.WeightKg)
	if err != nil {
		return nil, fmt.Errorf("quote shipment: %w", err)
	}

	req := BuildDirectionsRequest(shipment, language)
	route, err := provider.Directions(ctx, req)
	if err != nil {
		var se *domain.ServiceError
		if !errors.As(err, &se) {
			err = &domain.ServiceError{Op: "directions", Err: err}
		}
		return nil, fmt.Errorf("quote shipment: %w", err)
	}

	if route.Empty() {
		return nil, fmt.Errorf("quote shipment %q -> %q: %w", req.Origin, req.Destination, domain.ErrNoRouteFound)
	}

	totalKm := route.TotalKm()
	currency := fleet.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	quote := &domain.Quote{
		Vehicle:              vehicle,
		Policy:               fleet.Policy,
		Origin:               req.Origin,
		FinalDestination:     req.Destination,
		Waypoints:            req.Waypoints,
		WaypointOrder:        route.WaypointOrder,
		TotalDistanceMeters:  route.TotalDistanceMeters(),
		TotalKm:              totalKm,
		TotalDurationSeconds: route.TotalDurationSeconds(),
		Cost:                 EstimateCost(fleet, vehicle, totalKm),
		Currency:             currency,
		Summary:              route.Summary,
		NavigationURL:        NavigationURL(req.Origin, req.Destination, req.Waypoints),
		Legs:                 route.Legs,
	}

	// Geometry is informational; a malformed polyline does not fail the quote.
	if err := attachGeometry(quote, route); err != nil {
		obs.Logf(ctx, "quote geometry skipped: %v", err)
	}

	return quote, nil
}

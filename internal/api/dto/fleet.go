package dto

type FleetResponse struct {
	Policy        string            `json:"policy"`
	PricePerLiter float64           `json:"price_per_liter,omitempty"`
	Currency      string            `json:"currency"`
	Vehicles      []VehicleResponse `json:"vehicles"`
}

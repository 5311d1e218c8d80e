package models

// RateTier is one band of a progressive billing schedule. UpToKWh is the
// inclusive upper bound of the band in cumulative kWh; 0 marks the unbounded
// last tier.
type RateTier struct {
	UpToKWh     float64 `json:"upToKwh" yaml:"up_to_kwh"`
	PricePerKWh float64 `json:"pricePerKwh" yaml:"price_per_kwh"`
}

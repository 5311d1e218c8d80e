package models

import "time"

// Reading represents a single day's raw meter reading, the input to the
// analysis step
type Reading struct {
	Date time.Time `json:"date"`
	KWh  float64   `json:"kwh"`
}

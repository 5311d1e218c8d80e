// Package format renders numbers for display with grouped thousands. Unit
// suffixes are appended by callers, not here.
package format

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Comma formats an integer with thousands separators: 1880327 -> "1,880,327".
func Comma(n int64) string {
	return humanize.Comma(n)
}

// RoundComma rounds a real value half-up to the nearest integer and formats
// it with thousands separators. Displayed kWh and won are always integral.
func RoundComma(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// Package billing implements the progressive (tiered) rate calculation that
// turns a month's metered kWh into a billed amount in won.
package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wattlab/wattboard/pkg/models"
)

// ErrNegativeUsage is returned when a negative consumption figure reaches the
// calculator. Negative readings are an input error, never coerced to zero.
var ErrNegativeUsage = errors.New("usage must not be negative")

// ValidateSchedule checks that a schedule can be billed against: at least one
// tier, strictly ascending bounds, non-negative prices, and an unbounded last
// tier (up_to_kwh = 0).
func ValidateSchedule(tiers []models.RateTier) error {
	if len(tiers) == 0 {
		return errors.New("schedule must contain at least one tier")
	}
	prev := 0.0
	for i, tier := range tiers {
		if tier.PricePerKWh < 0 {
			return fmt.Errorf("tier %d has negative price %v", i+1, tier.PricePerKWh)
		}
		if i == len(tiers)-1 {
			if tier.UpToKWh != 0 {
				return fmt.Errorf("last tier must be unbounded (up_to_kwh = 0), got %v", tier.UpToKWh)
			}
			continue
		}
		if tier.UpToKWh <= prev {
			return fmt.Errorf("tier %d bound %v must exceed previous bound %v", i+1, tier.UpToKWh, prev)
		}
		prev = tier.UpToKWh
	}
	return nil
}

// Cost computes the billed amount for usage under a progressive schedule.
// The kWh falling inside each band is charged at that band's rate; usage
// landing exactly on a bound bills entirely within the lower band. The tier
// sum is rounded half-up to a whole won.
func Cost(tiers []models.RateTier, usageKWh float64) (int64, error) {
	if usageKWh < 0 {
		return 0, fmt.Errorf("%w: got %v", ErrNegativeUsage, usageKWh)
	}
	if err := ValidateSchedule(tiers); err != nil {
		return 0, err
	}

	usage := decimal.NewFromFloat(usageKWh)
	total := decimal.Zero
	lower := decimal.Zero
	for i, tier := range tiers {
		price := decimal.NewFromFloat(tier.PricePerKWh)
		if i == len(tiers)-1 {
			// Unbounded tier takes everything above the last bound.
			if band := usage.Sub(lower); band.Sign() > 0 {
				total = total.Add(band.Mul(price))
			}
			break
		}
		upper := decimal.NewFromFloat(tier.UpToKWh)
		if band := decimal.Min(usage, upper).Sub(lower); band.Sign() > 0 {
			total = total.Add(band.Mul(price))
		}
		if usage.LessThanOrEqual(upper) {
			break
		}
		lower = upper
	}

	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts produced here.
	return total.Round(0).IntPart(), nil
}

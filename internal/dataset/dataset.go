// Package dataset loads and validates the precomputed dashboard dataset and
// derives the annual summary from it.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/wattlab/wattboard/pkg/models"
)

//go:embed data/dataset.json
var dataFS embed.FS

// Default returns the embedded reference dataset.
func Default() (*models.Dataset, error) {
	data, err := dataFS.ReadFile("data/dataset.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded dataset: %w", err)
	}
	return Parse(data)
}

// Load reads and validates a dataset JSON file.
func Load(path string) (*models.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}
	return Parse(data)
}

// Parse decodes dataset JSON and fails fast on any invariant violation.
func Parse(data []byte) (*models.Dataset, error) {
	var ds models.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}
	if err := Validate(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate enforces the dataset invariants: exactly 12 monthly records
// covering months 1-12 uniquely with no negative figures, and tip cards with
// at least a title. Tip cards may be any count, including zero.
func Validate(ds *models.Dataset) error {
	if len(ds.Months) != 12 {
		return fmt.Errorf("dataset must contain exactly 12 monthly records, got %d", len(ds.Months))
	}
	var seen [13]bool
	for _, rec := range ds.Months {
		if rec.Month < 1 || rec.Month > 12 {
			return fmt.Errorf("invalid month %d", rec.Month)
		}
		if seen[rec.Month] {
			return fmt.Errorf("duplicate month %d", rec.Month)
		}
		seen[rec.Month] = true
		if rec.UsageKWh < 0 {
			return fmt.Errorf("month %d has negative usage %v", rec.Month, rec.UsageKWh)
		}
		if rec.CostWon < 0 {
			return fmt.Errorf("month %d has negative cost %d", rec.Month, rec.CostWon)
		}
	}
	for i, tip := range ds.Tips {
		if tip.Title == "" {
			return fmt.Errorf("tip %d has an empty title", i+1)
		}
	}
	return nil
}

// Sorted returns a copy of the monthly records in calendar order.
func Sorted(months []models.MonthlyRecord) []models.MonthlyRecord {
	out := make([]models.MonthlyRecord, len(months))
	copy(out, months)
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// Summarize derives the annual summary from the monthly records. The average
// cost is rounded half-up to a whole won.
func Summarize(months []models.MonthlyRecord) models.AnnualSummary {
	n := int64(len(months))
	if n == 0 {
		return models.AnnualSummary{}
	}
	var usage float64
	var cost int64
	for _, rec := range months {
		usage += rec.UsageKWh
		cost += rec.CostWon
	}
	return models.AnnualSummary{
		TotalUsageKWh: usage,
		TotalCostWon:  cost,
		AvgUsageKWh:   usage / float64(n),
		AvgCostWon:    (cost + n/2) / n,
	}
}

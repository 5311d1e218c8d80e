package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/internal/billing"
	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/format"
	"github.com/wattlab/wattboard/pkg/models"
)

var analyzeOut string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Aggregate readings and compute tiered billing into the dashboard dataset",
	Long: `Sums the stored readings into twelve monthly totals, runs the progressive
billing calculation over the configured rate schedule and writes the dataset
JSON consumed by the dashboard. All twelve months of the configured year must
have readings.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOut, "out", "dataset.json", "Output dataset file")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	tariff := cfg.GetTariff()
	if err := billing.ValidateSchedule(tariff); err != nil {
		return fmt.Errorf("invalid tariff schedule: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	year := cfg.GetYear()
	totals, err := db.MonthlyTotals(year)
	if err != nil {
		return fmt.Errorf("aggregating readings: %w", err)
	}
	if len(totals) != 12 {
		return fmt.Errorf("expected readings for all 12 months of %d, found %d", year, len(totals))
	}

	months := make([]models.MonthlyRecord, 0, 12)
	for _, t := range totals {
		cost, err := billing.Cost(tariff, t.KWh)
		if err != nil {
			return fmt.Errorf("billing month %d: %w", t.Month, err)
		}
		months = append(months, models.MonthlyRecord{
			Month:    t.Month,
			UsageKWh: t.KWh,
			CostWon:  cost,
		})
	}

	// Tip cards carry over from the reference dataset.
	ref, err := dataset.Default()
	if err != nil {
		return fmt.Errorf("loading reference tips: %w", err)
	}

	ds := models.Dataset{
		Building: cfg.GetBuilding(),
		Year:     year,
		Months:   months,
		Tips:     ref.Tips,
	}
	if err := dataset.Validate(&ds); err != nil {
		return fmt.Errorf("validating dataset: %w", err)
	}

	data, err := json.MarshalIndent(&ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}
	if err := os.WriteFile(analyzeOut, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing dataset file: %w", err)
	}

	sum := dataset.Summarize(ds.Months)
	fmt.Printf("Wrote %s for %s %d\n", analyzeOut, ds.Building, ds.Year)
	fmt.Printf("  Total usage: %s kWh\n", format.RoundComma(sum.TotalUsageKWh))
	fmt.Printf("  Total cost:  %s won\n", format.Comma(sum.TotalCostWon))
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/format"
	"github.com/wattlab/wattboard/pkg/models"
)

var listDataset string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the monthly usage and billing figures",
	Long:  `Displays the monthly records of the dataset as a table with yearly totals.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listDataset, "dataset", "dataset.json", "Dataset file (falls back to the embedded reference dataset)")
	rootCmd.AddCommand(listCmd)
}

// loadDataset reads the dataset file, falling back to the embedded reference
// dataset when the file does not exist
func loadDataset(path string) (*models.Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return dataset.Default()
	}
	return dataset.Load(path)
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(listDataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	fmt.Printf("\n%s %d Usage Data:\n", ds.Building, ds.Year)
	fmt.Println("----------------------------------------")
	fmt.Printf("%-8s  %12s  %14s\n", "Month", "kWh", "Cost (won)")
	fmt.Println("----------------------------------------")

	for _, rec := range dataset.Sorted(ds.Months) {
		fmt.Printf("%-8d  %12s  %14s\n", rec.Month, format.RoundComma(rec.UsageKWh), format.Comma(rec.CostWon))
	}

	sum := dataset.Summarize(ds.Months)
	fmt.Println("----------------------------------------")
	fmt.Printf("Total:    %12s  %14s\n", format.RoundComma(sum.TotalUsageKWh), format.Comma(sum.TotalCostWon))
	fmt.Printf("Average:  %12s  %14s\n", format.RoundComma(sum.AvgUsageKWh), format.Comma(sum.AvgCostWon))

	return nil
}

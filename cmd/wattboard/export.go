package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/internal/report"
)

var (
	exportDataset string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the annual report as an xlsx workbook",
	Long:  `Writes the monthly figures and the derived annual summary to an Excel workbook.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDataset, "dataset", "dataset.json", "Dataset file (falls back to the embedded reference dataset)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: wattboard-<year>.xlsx)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(exportDataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	out := exportOut
	if out == "" {
		out = fmt.Sprintf("wattboard-%d.xlsx", ds.Year)
	}

	if err := report.Write(out, ds); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("Wrote %s\n", out)
	return nil
}

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/pkg/models"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import raw meter readings from a CSV file",
	Long: `Reads daily meter readings from a CSV file (columns: date,kwh with dates as
YYYY-MM-DD) and stores them in the local SQLite database. Duplicate dates are
ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening readings file: %w", err)
	}
	defer file.Close()

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	imported := 0
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading CSV: %w", err)
		}
		line++

		// Skip a header row if present
		if line == 1 && record[0] == "date" {
			continue
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return fmt.Errorf("line %d: parsing date %q: %w", line, record[0], err)
		}
		kwh, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return fmt.Errorf("line %d: parsing kwh %q: %w", line, record[1], err)
		}
		if kwh < 0 {
			return fmt.Errorf("line %d: negative reading %v", line, kwh)
		}

		if err := db.InsertReading(models.Reading{Date: date, KWh: kwh}); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		imported++
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	count, err := db.ReadingCount(cfg.GetYear())
	if err != nil {
		return fmt.Errorf("counting readings: %w", err)
	}

	fmt.Printf("Imported %d readings (%d stored for %d)\n", imported, count, cfg.GetYear())
	return nil
}

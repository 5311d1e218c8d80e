package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/publisher"
)

var (
	publishDataset string
	publishMonth   int
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish monthly figures to MQTT / Home Assistant",
	Long:  `Reads the dataset and publishes the monthly usage and billing figures to the configured MQTT broker and Home Assistant instance.`,
	RunE:  runPublish,
}

func init() {
	publishCmd.Flags().StringVar(&publishDataset, "dataset", "dataset.json", "Dataset file (falls back to the embedded reference dataset)")
	publishCmd.Flags().IntVar(&publishMonth, "month", 0, "Only publish a single month (1-12, default: all)")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if !cfg.MQTT.Enabled && !cfg.HomeAssistant.Enabled {
		return fmt.Errorf("neither MQTT nor Home Assistant is enabled in config")
	}

	ds, err := loadDataset(publishDataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	pub, err := publisher.New(cfg.MQTT, cfg.GetTopicPrefix(), cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	published := 0
	for _, rec := range dataset.Sorted(ds.Months) {
		if publishMonth > 0 && rec.Month != publishMonth {
			continue
		}
		if err := pub.PublishMonthly(ds.Building, ds.Year, rec); err != nil {
			return fmt.Errorf("publishing month %d: %w", rec.Month, err)
		}
		fmt.Printf("  ✓ %d월 (%.2f kWh)\n", rec.Month, rec.UsageKWh)
		published++
	}

	if published == 0 {
		return fmt.Errorf("no month matched --month %d", publishMonth)
	}

	fmt.Printf("Published %d months\n", published)
	return nil
}

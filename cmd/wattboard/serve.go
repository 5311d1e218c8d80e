package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wattlab/wattboard/internal/server"
)

var (
	servePort    int
	serveDataset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Starts the HTTP server: the rendered dashboard page, its static assets and
the read-only JSON API (dataset, summary, chart spec, xlsx export).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port (overrides config)")
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "dataset.json", "Dataset file (falls back to the embedded reference dataset)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ds, err := loadDataset(serveDataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	srv, err := server.New(ds, cfg.Server.DevMode)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	port := servePort
	if port <= 0 {
		port = cfg.GetPort()
	}

	fmt.Printf("Serving %s %d dashboard on http://localhost:%d\n", ds.Building, ds.Year, port)
	return srv.Run(fmt.Sprintf(":%d", port))
}

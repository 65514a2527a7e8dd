package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/api"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the decimal time HTTP API",
	Long: `Start the JSON API configured in the [api] section of the config
file: conversions, calendar mappings, and (when enabled) Prometheus
metrics on /metrics.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	profile, err := cfg.Profile(profileName)
	if err != nil {
		return err
	}

	server, err := api.NewServer(profile)
	if err != nil {
		return err
	}
	if cfg.API.Metrics {
		server.EnableMetrics()
	}

	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	log.Printf("dectime API listening on %s (profile %s)", addr, profile.Name)
	return http.ListenAndServe(addr, server.Handler())
}

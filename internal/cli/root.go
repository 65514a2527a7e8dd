// Package cli implements the dectime command-line interface: one-shot
// conversions, a live decimal clock, calendar mappings, yearly exports and
// the HTTP API server. All commands are thin wrappers over the core
// packages; nothing here does arithmetic of its own.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astrocycle/dectime/internal/daemon"
	"github.com/astrocycle/dectime/internal/domain"
)

var (
	configPath  string
	profileName string
)

var rootCmd = &cobra.Command{
	Use:   "dectime",
	Short: "Decimal time and Decimal Solar Calendar toolkit",
	Long: `dectime converts Unix timestamps and civil dates into Decimal Time:
a day split into 100,000 equal fractional units (Astrocycles subdivided
into Megacycles, Kilocycles and Cycles) plus a 10-month solar calendar
with alternating 36/37-day months.

Profiles for other bodies (day length, epoch, leap rule) live in
~/.dectime/config.toml; pass --profile to select one.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.dectime/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "P", "", "planetary profile name (default from config)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (daemon.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = daemon.DefaultPath()
		if err != nil {
			return daemon.Config{}, err
		}
	}
	return daemon.Load(path)
}

// activeProfile resolves the --profile flag against the loaded config.
func activeProfile() (domain.PlanetProfile, error) {
	cfg, err := loadConfig()
	if err != nil {
		return domain.PlanetProfile{}, err
	}
	p, err := cfg.Profile(profileName)
	if err != nil {
		return domain.PlanetProfile{}, fmt.Errorf("select profile: %w", err)
	}
	return p, nil
}

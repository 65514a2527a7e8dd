// Package daemon holds the on-disk configuration for dectime: the HTTP API
// listen settings, the export store location, and the planetary profiles
// available to every command.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/astrocycle/dectime/internal/domain"
)

// Config is the parsed ~/.dectime/config.toml.
type Config struct {
	DefaultProfile string                 `toml:"default_profile"`
	API            APIConfig              `toml:"api"`
	Storage        StorageConfig          `toml:"storage"`
	Profiles       []domain.PlanetProfile `toml:"profiles"`
}

// APIConfig configures the HTTP API server.
type APIConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Metrics bool   `toml:"metrics"`
}

// StorageConfig configures the SQLite export store.
type StorageConfig struct {
	Path string `toml:"path"` // empty means ~/.dectime/dectime.db
}

// DefaultConfig returns the configuration used when no config file exists:
// Earth as the active profile, Mars available, API on localhost with
// metrics enabled.
func DefaultConfig() Config {
	return Config{
		DefaultProfile: "Earth",
		API: APIConfig{
			Host:    "127.0.0.1",
			Port:    8094,
			Metrics: true,
		},
		Storage: StorageConfig{},
		Profiles: []domain.PlanetProfile{
			domain.EarthProfile(),
			domain.MarsProfile(),
		},
	}
}

// DefaultPath returns ~/.dectime/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dectime", "config.toml"), nil
}

// Load reads a config file, falling back to DefaultConfig when the file
// does not exist. Profiles are validated on the way in: decimal fields
// arrive as TOML strings, so a loaded profile carries exactly the digits
// the file holds.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %v", domain.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes the config as TOML, creating the parent directory if needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Validate checks every profile and that the default profile exists.
func (c Config) Validate() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: no profiles configured", domain.ErrInvalidConfig)
	}
	for _, p := range c.Profiles {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}
	if c.DefaultProfile != "" {
		if _, err := c.Profile(c.DefaultProfile); err != nil {
			return err
		}
	}
	return nil
}

// Profile looks up a profile by name, case-insensitively. An empty name
// selects the default profile.
func (c Config) Profile(name string) (domain.PlanetProfile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	for _, p := range c.Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return domain.PlanetProfile{}, fmt.Errorf("%w: no profile named %q", domain.ErrInvalidConfig, name)
}

// DBPath resolves the export store location.
func (c Config) DBPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".dectime", "dectime.db"), nil
}

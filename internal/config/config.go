// Package config loads the stax configuration file, creating it with defaults
// on first run. The resulting Config is passed explicitly to whatever needs it;
// there is no package-level state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the tracker needs to run.
type Config struct {
	// DatabasePath is where the sqlite file lives.
	DatabasePath string `yaml:"database_path"`

	// ImportPlatform is the platform label stamped on imported accounts.
	// Only one source integration is supported.
	ImportPlatform string `yaml:"import_platform"`

	// Dropdown defaults for the interactive session form.
	Locations []string `yaml:"locations"`
	Games     []string `yaml:"games"`
	Blinds    []string `yaml:"blinds"`
}

// Default returns the configuration used when no file exists yet.
func Default() (*Config, error) {
	dir, err := staxDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DatabasePath:   filepath.Join(dir, "stax.db"),
		ImportPlatform: "Global Poker",
		Locations:      []string{"Rivers", "GVC", "Wind Creek", "Home Game", "Other"},
		Games:          []string{"NLHE", "PLO", "PLO5", "Mixed", "Other"},
		Blinds:         []string{"$1/$3", "$2/$5", "$5/$10", "$10/$25", "$25/$50", "Other"},
	}, nil
}

// Load reads ~/.stax/config.yaml, writing the default file first if it is missing.
func Load() (*Config, error) {
	dir, err := staxDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads a config file at an explicit path, creating it with defaults
// if it does not exist.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg, err := Default()
		if err != nil {
			return nil, err
		}
		if err := cfg.save(path); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func staxDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".stax"), nil
}

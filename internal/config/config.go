package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all arsenal configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`

	// Weapon catalog source
	Catalog CatalogConfig `yaml:"catalog"`

	// Interactive explorer defaults
	Explorer ExplorerConfig `yaml:"explorer"`

	// Spreadsheet export
	Export ExportConfig `yaml:"export"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CatalogConfig selects the weapon catalog.
type CatalogConfig struct {
	// Path to a YAML catalog. Empty uses the catalog built into the binary.
	Path string `yaml:"path" env:"ARSENAL_CATALOG"`
}

// ExportConfig configures XLSX export.
type ExportConfig struct {
	Directory string `yaml:"directory" env:"ARSENAL_EXPORT_DIR"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:     "arsenal",
		Catalog:  CatalogConfig{},
		Explorer: *DefaultExplorerConfig(),
		Export: ExportConfig{
			Directory: ".",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   defaultLogFile(),
		},
	}
}

// DefaultConfigPath returns ~/.config/arsenal/config.yaml (or the platform
// equivalent).
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".arsenal", "config.yaml")
	}
	return filepath.Join(dir, "arsenal", "config.yaml")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "arsenal.log"
	}
	return filepath.Join(dir, "arsenal", "arsenal.log")
}

// Load loads configuration from a YAML file and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies ARSENAL_* environment variables on top of the
// file values. Unset variables leave the field untouched.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Explorer.ChartTopN < 1 {
		return fmt.Errorf("explorer.chart_top_n must be positive, got %d", c.Explorer.ChartTopN)
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	return nil
}

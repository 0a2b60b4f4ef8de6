package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level" env:"ARSENAL_LOG_LEVEL"` // debug, info, warn, error
	Format     string          `yaml:"format"`                        // json, console
	File       string          `yaml:"file" env:"ARSENAL_LOG_FILE"`   // empty disables logging
	Categories map[string]bool `yaml:"categories,omitempty"`          // Per-category toggles
}

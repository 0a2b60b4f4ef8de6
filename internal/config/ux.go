package config

import (
	"arsenal/internal/catalog"
	"arsenal/internal/state"
)

// ExplorerConfig holds the interactive explorer's startup selection.
type ExplorerConfig struct {
	// DefaultCategory is the category selected at startup ("All" for none).
	DefaultCategory string `yaml:"default_category"`

	// ChartTopN is the initial number of chart bars.
	ChartTopN int `yaml:"chart_top_n" env:"ARSENAL_CHART_TOP"`

	// DarkMode forces the dark palette. When false the terminal is probed.
	DarkMode bool `yaml:"dark_mode" env:"ARSENAL_DARK_MODE"`
}

// DefaultExplorerConfig returns the explorer defaults.
func DefaultExplorerConfig() *ExplorerConfig {
	return &ExplorerConfig{
		DefaultCategory: catalog.AllCategories,
		ChartTopN:       state.DefaultChartTopN,
	}
}

// InitialState builds the startup UI state from the explorer settings.
func (e ExplorerConfig) InitialState() state.State {
	s := state.New()
	if e.DefaultCategory != "" {
		s = s.SetCategory(e.DefaultCategory)
	}
	if e.ChartTopN > 0 {
		s = s.SetChartTopN(e.ChartTopN)
	}
	return s
}

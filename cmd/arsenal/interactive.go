package main

import (
	"fmt"

	"arsenal/cmd/arsenal/explorer"
	"arsenal/cmd/arsenal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInteractive(cmd *cobra.Command, args []string) error {
	s, err := initialState(cmd)
	if err != nil {
		return err
	}

	m := explorer.New(explorer.Options{
		Catalog:   weapons,
		State:     s,
		Styles:    ui.NewStyles(ui.DetectTheme(cfg.Explorer.DarkMode)),
		ExportDir: cfg.Export.Directory,
	})

	logger.Info("starting explorer",
		zap.String("category", s.Category),
		zap.Bool("dark", cfg.Explorer.DarkMode))

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	return nil
}

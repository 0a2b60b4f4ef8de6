package main

import (
	"fmt"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/logging"
	"arsenal/internal/state"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare <id> [id]",
	Short: "Print comparison cards for one or two weapons",
	Long: `Print comparison cards for one or two weapons by id.

Ids the catalog does not know are shown as an unselected card.`,
	Example: `  arsenal compare vandal phantom`,
	Args:    cobra.RangeArgs(1, state.MaxCompare),
	RunE:    runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	s := state.New()
	for _, id := range args {
		if s.IsCompared(id) {
			continue
		}
		if _, ok := weapons.Lookup(id); !ok {
			logging.Get(logging.CategoryCatalog).Warn("unknown weapon id", zap.String("id", id))
		}
		s = s.ToggleCompare(id)
	}

	styles := ui.NewStyles(ui.DetectTheme(cfg.Explorer.DarkMode))
	fmt.Fprintln(cmd.OutOrStdout(), styles.ComparePanel(s, weapons, ui.CardWidth))
	return nil
}

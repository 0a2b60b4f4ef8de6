package main

import (
	"fmt"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/derive"

	"github.com/spf13/cobra"
)

var chartWidth int

var chartCmd = &cobra.Command{
	Use:     "chart",
	Short:   "Print the top weapons by DPS as a bar chart",
	Example: `  arsenal chart --category SMG --top 5`,
	Args:    cobra.NoArgs,
	RunE:    runChart,
}

func init() {
	addStateFlags(chartCmd)
	chartCmd.Flags().IntVar(&chartWidth, "width", 80, "Chart width in columns")
}

func runChart(cmd *cobra.Command, args []string) error {
	s, err := initialState(cmd)
	if err != nil {
		return err
	}
	view := derive.Derive(weapons.Weapons(), s.Params())
	styles := ui.NewStyles(ui.DetectTheme(cfg.Explorer.DarkMode))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.Title.Render(ui.ChartTitle(view.Chart)))
	fmt.Fprintln(out, ui.NewBarChart(styles).Render(view.Chart, chartWidth))
	return nil
}

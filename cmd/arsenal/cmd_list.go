package main

import (
	"fmt"

	"arsenal/cmd/arsenal/ui"
	"arsenal/internal/derive"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered and sorted weapon table",
	Example: `  arsenal list --category Rifle --sort dps --desc
  arsenal list --query op`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	addStateFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := initialState(cmd)
	if err != nil {
		return err
	}
	view := derive.Derive(weapons.Weapons(), s.Params())
	styles := ui.NewStyles(ui.DetectTheme(cfg.Explorer.DarkMode))

	headers := []string{"ID", "Weapon", "Class"}
	for _, c := range derive.Columns() {
		headers = append(headers, ui.ColumnLabel(c)+s.SortIndicator(c))
	}
	table := ui.NewSimpleTable(s.Category, headers).AlignRight(3, 4, 5, 6, 7, 8, 9)
	for _, r := range view.Rows {
		table.AddRow(
			r.ID,
			r.Name,
			styles.CategoryText(r.Category),
			ui.FormatCost(r.Cost),
			ui.FormatNumber(r.Damage.Head),
			ui.FormatNumber(r.Damage.Body),
			ui.FormatNumber(r.Damage.Leg),
			ui.FormatNumber(r.FireRate),
			ui.FormatNumber(float64(r.Magazine)),
			ui.FormatNumber(float64(r.DPS)),
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, table.View(styles))
	fmt.Fprintln(out, styles.Muted.Render(ui.ShowingLine(view.Count())))
	return nil
}

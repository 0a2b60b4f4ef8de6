package main

import (
	"fmt"
	"slices"

	"arsenal/internal/derive"
	"arsenal/internal/state"

	"github.com/spf13/cobra"
)

// State flags shared by the interactive explorer and the one-shot commands.
var (
	categoryFlag string
	queryFlag    string
	sortFlag     string
	descFlag     bool
	topFlag      int
)

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "Category filter (see 'arsenal categories')")
	cmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Name search text")
	cmd.Flags().StringVarP(&sortFlag, "sort", "s", "", fmt.Sprintf("Sort column %v", derive.Columns()))
	cmd.Flags().BoolVar(&descFlag, "desc", false, "Sort descending")
	cmd.Flags().IntVarP(&topFlag, "top", "n", state.DefaultChartTopN, "Chart size")
}

// initialState starts from the configured explorer defaults and applies the
// state flags the user set.
func initialState(cmd *cobra.Command) (state.State, error) {
	s := cfg.Explorer.InitialState()
	flags := cmd.Flags()

	if flags.Changed("category") {
		if !slices.Contains(weapons.SelectorOptions(), categoryFlag) {
			return s, fmt.Errorf("unknown category %q (valid: %v)", categoryFlag, weapons.SelectorOptions())
		}
		s = s.SetCategory(categoryFlag)
	}

	if flags.Changed("query") {
		s = s.SetQuery(queryFlag)
	}

	col, err := derive.ParseColumn(sortFlag)
	if err != nil {
		return s, err
	}
	if col != derive.ColumnNone {
		s = s.ClearSort().ToggleHeaderSort(col)
		if descFlag {
			s = s.ToggleHeaderSort(col)
		}
	} else if descFlag {
		return s, fmt.Errorf("--desc requires --sort")
	}

	if flags.Changed("top") {
		if topFlag < 1 {
			return s, fmt.Errorf("--top must be positive, got %d", topFlag)
		}
		s = s.SetChartTopN(topFlag)
	}

	return s, nil
}

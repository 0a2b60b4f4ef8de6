package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category filter options in catalog order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, opt := range weapons.SelectorOptions() {
			fmt.Fprintln(cmd.OutOrStdout(), opt)
		}
		return nil
	},
}

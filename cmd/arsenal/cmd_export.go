package main

import (
	"fmt"
	"time"

	"arsenal/internal/derive"
	"arsenal/internal/export"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered and sorted view to an XLSX workbook",
	Long: `Write the filtered and sorted view to an XLSX workbook with a weapons
sheet, a DPS chart sheet and a sheet recording the filter settings.

Without --out the file is written to the configured export directory under
a dated name.`,
	Example: `  arsenal export --category Rifle --sort dps --desc --out rifles.xlsx`,
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

func init() {
	addStateFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := initialState(cmd)
	if err != nil {
		return err
	}
	params := s.Params()
	view := derive.Derive(weapons.Weapons(), params)

	path := exportOut
	if path == "" {
		path, err = export.ToDir(cfg.Export.Directory, time.Now(), view, params)
	} else {
		err = export.WriteXLSX(path, view, params)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d weapons to %s\n", view.Count(), path)
	return nil
}

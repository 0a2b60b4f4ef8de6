package main

import (
	"fmt"
	"os"

	"arsenal/internal/catalog"
	"arsenal/internal/config"
	"arsenal/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose     bool
	configPath  string
	catalogPath string

	// Loaded in PersistentPreRunE
	cfg     *config.Config
	weapons *catalog.Catalog

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "arsenal",
	Short: "arsenal - weapon catalog explorer",
	Long: `arsenal browses a catalog of game weapons.

Filter by category, search by name, sort by any stat column, compare two
weapons side by side and chart the top weapons by damage per second.
DPS is body damage times fire rate, rounded to the nearest whole number.

Run without arguments to start the interactive explorer.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { logging.Sync() },
	RunE:              runInteractive,
	Args:              cobra.NoArgs,
}

// setup loads configuration, starts logging and loads the catalog.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if catalogPath != "" {
		c.Catalog.Path = catalogPath
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	if err := logging.Initialize(logging.Options{
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		File:       c.Logging.File,
		Categories: c.Logging.Categories,
		Verbose:    verbose,
	}); err != nil {
		return err
	}
	logger = logging.Get(logging.CategoryBoot)
	logger.Debug("config loaded", zap.String("path", path), zap.String("command", cmd.Name()))

	cat, err := catalog.Load(c.Catalog.Path)
	if err != nil {
		return err
	}
	logging.Get(logging.CategoryCatalog).Info("catalog loaded",
		zap.String("path", c.Catalog.Path),
		zap.Int("weapons", cat.Len()),
		zap.Int("categories", len(cat.Categories())))

	cfg, weapons = c, cat
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: user config dir/arsenal/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Weapon catalog YAML (default: built-in catalog)")
	addStateFlags(rootCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/config"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage whichchain configuration",
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(_ *cobra.Command, _ []string) error {
		if formatter.IsJSON() {
			return formatter.Print(cfg)
		}
		if err := formatter.Printf("home: %s\n", cfg.Home); err != nil {
			return err
		}
		registryDesc := cfg.Registry.Dir
		if registryDesc == "" {
			registryDesc = "(embedded)"
		}
		if err := formatter.Printf("registry: %s\n", registryDesc); err != nil {
			return err
		}
		if err := formatter.Printf("output: %s\n", cfg.Output.DefaultFormat); err != nil {
			return err
		}
		return formatter.Printf("logging: %s -> %s\n", cfg.Logging.Level, cfg.Logging.File)
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to disk",
	RunE: func(_ *cobra.Command, _ []string) error {
		path := config.Path(cfg.Home)
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		logger.Debug("config written to %s", path)
		return formatter.Printf("wrote %s\n", path)
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

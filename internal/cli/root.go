// Package cli implements the whichchain command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/whichchain/whichchain/internal/config"
	"github.com/whichchain/whichchain/internal/output"
	"github.com/whichchain/whichchain/internal/registry"
	wcerrors "github.com/whichchain/whichchain/pkg/errors"
)

var (
	// Global flags
	homeDir      string
	registryDir  string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter
	reg       *registry.Registry

	// stdout is swapped for a buffer in tests.
	stdout io.Writer = os.Stdout
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "whichchain",
	Short: "Identify which blockchain an address or public key belongs to",
	Long: `Whichchain classifies an opaque string — an address or a public key — and
reports every chain it could plausibly belong to, ranked by confidence.
Addresses are checksum-validated and normalized; public keys are run through
each compatible chain's derivation pipeline.

Example:
  whichchain identify 0xd8da6bf26964af9d7eed9e03e53415d37aa96045
  whichchain identify 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa --chain bitcoin
  whichchain derive 0x0479be66... --pipeline evm
  whichchain chains list`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if formatter != nil {
			_ = output.FormatError(os.Stderr, err, formatter.Format())
		} else {
			_ = output.FormatError(os.Stderr, err, output.FormatText)
		}
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return wcerrors.ExitCode(err)
}

// initGlobals initializes global configuration, logger, formatter, and the
// chain registry.
func initGlobals() error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	configPath := config.Path(home)
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		// Use defaults if config doesn't exist
		cfg = config.Defaults()
		cfg.Home = home
	}

	config.ApplyEnvironment(cfg)

	// Command-line flags win over config and environment
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if registryDir != "" {
		cfg.Registry.Dir = config.SanitizePath(registryDir)
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if outputFormat != "" && outputFormat != "auto" {
		cfg.Output.DefaultFormat = outputFormat
	}

	logLevel := config.ParseLogLevel(cfg.Logging.Level)
	logger, err = config.NewLogger(logLevel, cfg.Logging.File)
	if err != nil {
		// Use null logger if we can't create the file
		logger = config.NullLogger()
	}

	formatter = output.NewFormatter(output.ResolveFormat(cfg.Output.DefaultFormat, stdout), stdout)

	reg, err = registry.Build(registry.NewLoader(cfg.Registry.Dir), logger)
	if err != nil {
		return err
	}
	for _, id := range reg.Skipped() {
		logger.Error("chain definition skipped: %s", id)
		if cfg.Output.Verbose {
			output.Warnf("chain definition skipped: %s", id)
		}
	}

	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// Registry returns the loaded chain registry.
func Registry() *registry.Registry {
	return reg
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "whichchain data directory (default: ~/.whichchain)")
	rootCmd.PersistentFlags().StringVar(&registryDir, "registry-dir", "", "load chain definitions from a directory instead of the embedded set")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

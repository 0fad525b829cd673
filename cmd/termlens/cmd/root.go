// Package cmd provides the CLI commands for Termlens.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/termlens/internal/config"
	"github.com/Aman-CERP/termlens/internal/errors"
	"github.com/Aman-CERP/termlens/internal/logging"
	"github.com/Aman-CERP/termlens/pkg/version"
)

var (
	configPath     string
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the termlens CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "termlens",
		Short: "Field and term statistics over a JSON-lines corpus",
		Long: `Termlens indexes a JSON-lines corpus into an in-memory segmented index
and exposes the statistics a scoring script sees: per-field aggregates,
per-term document frequencies, per-document term frequencies and
positions, and BM25 ranking built on top of them.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("termlens version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default .termlens.yaml)")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.PersistentPreRunE = setupLogging
	cmd.PersistentPostRun = func(*cobra.Command, []string) {
		if loggingCleanup != nil {
			loggingCleanup()
		}
	}

	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newTermsCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command, printing structured errors to stderr.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatForCLI(err))
		return err
	}
	return nil
}

func setupLogging(*cobra.Command, []string) error {
	level := "info"
	if debugMode {
		level = "debug"
	}

	cleanup, err := logging.SetupDefault(level)
	if err != nil {
		// Logging failure must not block the command itself
		fmt.Fprintf(os.Stderr, "warning: logging setup failed: %v\n", err)
		return nil
	}
	loggingCleanup = cleanup
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debugMode {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

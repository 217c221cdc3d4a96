// Package cli wires the flowsched commands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowsched/config"
)

// app carries the global flags and the state PersistentPreRunE derives
// from them.
type app struct {
	configPath string
	workers    int
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root command for the CLI.
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "flowsched",
		Short: "Plan resource production and valve tours over a fixed horizon",
		Long: `flowsched searches for the schedule that maximizes a target resource
(build catalogs) or total released pressure (valve catalogs) within a horizon.

Examples:
  flowsched blueprints input.txt --horizon 24
  flowsched blueprints input.txt --horizon 32 --top 3
  flowsched valves input.txt --horizon 26 --agents 2
  flowsched solve instance.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to a config file (default: ./flowsched.yaml or ./configs/flowsched.yaml)")
	rootCmd.PersistentFlags().IntVar(&a.workers, "workers", 0,
		"Concurrent searches (0 uses the configured value)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBlueprintsCommand(a))
	rootCmd.AddCommand(newValvesCommand(a))
	rootCmd.AddCommand(newSolveCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = cfg.Logging.Logger(cmd.ErrOrStderr())

	return nil
}

// Execute runs the root command under ctx and exits non-zero on failure.
func Execute(ctx context.Context) {
	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacecargo/internal/adapters/logging"
	"github.com/andrescamacho/spacecargo/internal/adapters/memory"
	"github.com/andrescamacho/spacecargo/internal/adapters/metrics"
	"github.com/andrescamacho/spacecargo/internal/application/common"
	"github.com/andrescamacho/spacecargo/internal/application/mediator"
	"github.com/andrescamacho/spacecargo/internal/application/setup"
	"github.com/andrescamacho/spacecargo/internal/domain/navigation"
	"github.com/andrescamacho/spacecargo/internal/infrastructure/config"
)

var (
	// Global flags
	configPath    string
	logLevel      string
	dockingPolicy string
	withMetrics   bool
	verbose       bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacecargo",
		Short: "SpaceCargo - fly vessels between planets and move cargo",
		Long: `SpaceCargo simulates vessels flying between planets and trading cargo.

Scenarios are TOML files declaring planets, vessels and a list of steps.
Each step may declare the error kind it expects; a run stops at the first
step whose outcome differs.

Examples:
  spacecargo demo
  spacecargo run scenarios/earth-run.toml
  spacecargo run --docking-policy strict scenarios/*.toml
  spacecargo config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs, ~/.spacecargo)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&dockingPolicy, "docking-policy", "",
		"Override docking.policy (lenient, strict)")
	rootCmd.PersistentFlags().BoolVar(&withMetrics, "metrics", false,
		"Collect command metrics and print a summary after each run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output (same as --log-level debug)")

	// Add command groups
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewDemoCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// session is everything a command needs once configuration is resolved
type session struct {
	cfg      *config.Config
	policy   navigation.DockingPolicy
	mediator mediator.Mediator
	metrics  *metrics.Collector // nil unless metrics are enabled
	ctx      context.Context
}

// newSession loads configuration, applies flag overrides, and wires the
// logger, the in-memory stores and the mediator.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if dockingPolicy != "" {
		cfg.Docking.Policy = dockingPolicy
	}
	if withMetrics {
		cfg.Metrics.Enabled = true
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	policy, err := cfg.Docking.DockingPolicy()
	if err != nil {
		return nil, err
	}

	logger := logging.NewZerologLogger("spacecargo", cfg.Logging, logOutput(cmd, cfg.Logging))

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		if collector, err = metrics.NewCollector(); err != nil {
			return nil, fmt.Errorf("failed to create metrics collector: %w", err)
		}
	}

	registry := setup.NewHandlerRegistry(memory.NewVesselStore(), memory.NewPlanetStore())
	med, err := registry.NewMediator(metrics.PrometheusMiddleware(collector))
	if err != nil {
		return nil, fmt.Errorf("failed to wire handlers: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &session{
		cfg:      cfg,
		policy:   policy,
		mediator: med,
		metrics:  collector,
		ctx:      common.WithLogger(ctx, logger),
	}, nil
}

func logOutput(cmd *cobra.Command, cfg config.LoggingConfig) io.Writer {
	if cfg.Output == "stdout" {
		return cmd.OutOrStdout()
	}
	return cmd.ErrOrStderr()
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacecargo/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect SpaceCargo configuration settings.

Configuration is loaded from multiple sources with priority:
1. Command-line flags
2. Environment variables (SC_* prefix)
3. Config file (config.yaml)
4. Default values

Examples:
  spacecargo config show
  SC_DOCKING_POLICY=strict spacecargo config show`,
	}

	cmd.AddCommand(newConfigShowCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			printConfig(cmd, s.cfg)
			return nil
		},
	}
}

func printConfig(cmd *cobra.Command, cfg *config.Config) {
	out := cmd.OutOrStdout()
	styles := newReportStyles(cfg.Report.Styled)

	source := configPath
	if source == "" {
		source = "(search path)"
	}

	fmt.Fprintln(out, styles.Title.Render("SpaceCargo Configuration"))
	fmt.Fprintln(out, "========================")
	fmt.Fprintf(out, "  Config file:      %s\n", source)

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)

	fmt.Fprintln(out, "\nDocking:")
	fmt.Fprintf(out, "  Policy:           %s\n", cfg.Docking.Policy)

	fmt.Fprintln(out, "\nReport:")
	fmt.Fprintf(out, "  Styled:           %t\n", cfg.Report.Styled)

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
}

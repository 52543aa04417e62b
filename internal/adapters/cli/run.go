package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacecargo/internal/adapters/scenario"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.toml>...",
		Short: "Run scenario files",
		Long: `Run one or more TOML scenario files.

Each file starts from an empty universe. Report steps print status lines to
stdout; a summary follows each scenario. The command fails on the first
scenario with an unexpected outcome.

Example:
  spacecargo run scenarios/earth-run.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				sc, err := scenario.LoadFile(path)
				if err != nil {
					return err
				}
				if err := runScenario(cmd, sc); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// NewDemoCommand creates the demo command
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in demonstration scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, scenario.Demo())
		},
	}
}

func runScenario(cmd *cobra.Command, sc *scenario.Scenario) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	result, runErr := scenario.NewRunner(s.mediator, out, s.policy).Run(s.ctx, sc)
	styles := newReportStyles(s.cfg.Report.Styled)
	styles.renderSummary(out, result)

	if s.metrics != nil {
		lines, err := s.metrics.Summary()
		if err != nil {
			return err
		}
		styles.renderMetrics(out, lines)
	}

	if runErr != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, runErr)
	}
	return nil
}

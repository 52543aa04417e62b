package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/andrescamacho/spacecargo/internal/adapters/scenario"
)

// Palette
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6C7086")
	colorSuccess = lipgloss.Color("#A6E3A1")
	colorError   = lipgloss.Color("#F38BA8")
)

// reportStyles renders run summaries. With styling off every style is empty
// and output is plain text.
type reportStyles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

func newReportStyles(styled bool) reportStyles {
	if !styled {
		return reportStyles{}
	}
	return reportStyles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Muted:   lipgloss.NewStyle().Foreground(colorMuted),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Error:   lipgloss.NewStyle().Foreground(colorError).Bold(true),
	}
}

// renderSummary writes one line per step followed by a totals line
func (s reportStyles) renderSummary(w io.Writer, result *scenario.Result) {
	fmt.Fprintln(w, s.Title.Render(fmt.Sprintf("Scenario %s", result.Name)))

	for _, step := range result.Steps {
		mark := s.Success.Render("ok  ")
		if !step.Passed {
			mark = s.Error.Render("FAIL")
		}

		line := fmt.Sprintf("%s %2d. %s", mark, step.Index, step.Description)
		switch {
		case step.Err != nil && step.Passed:
			line += s.Muted.Render(fmt.Sprintf(" (rejected as expected: %s)", step.Kind))
		case step.Err != nil:
			line += s.Error.Render(fmt.Sprintf(" (%v)", step.Err))
		case !step.Passed:
			line += s.Error.Render(fmt.Sprintf(" (expected %s)", step.ExpectError))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w, s.Muted.Render(fmt.Sprintf("%d/%d steps passed", result.Passed(), len(result.Steps))))
}

// renderMetrics writes the counter summary under a heading
func (s reportStyles) renderMetrics(w io.Writer, lines []string) {
	fmt.Fprintln(w, s.Title.Render("Metrics"))
	for _, line := range lines {
		fmt.Fprintln(w, s.Muted.Render(line))
	}
}

package config

import "github.com/andrescamacho/spacecargo/internal/domain/navigation"

// DockingConfig selects how strictly planets check that a vessel has landed
type DockingConfig struct {
	// lenient: reject only when both axes differ (historical behaviour)
	// strict: the vessel's planet must be at the same coordinates
	Policy string `mapstructure:"policy" validate:"required,oneof=lenient strict"`
}

// DockingPolicy converts the configured text to the domain policy
func (c DockingConfig) DockingPolicy() (navigation.DockingPolicy, error) {
	return navigation.ParseDockingPolicy(c.Policy)
}

// ReportConfig controls how the CLI renders status reports
type ReportConfig struct {
	// Styled wraps report summaries in lipgloss styling; plain lines are always printed
	Styled bool `mapstructure:"styled"`
}

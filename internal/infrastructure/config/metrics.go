package config

// MetricsConfig holds Prometheus metrics configuration
type MetricsConfig struct {
	// Enabled collects command metrics in-process and prints a counter
	// summary after each scenario run
	Enabled bool `mapstructure:"enabled"`
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "spacecargo"
	// Subsystem for mediator-level metrics
	subsystem = "cargo"
)

// Collector owns a private Prometheus registry with the command and cargo
// metrics registered on it. A nil *Collector records nothing.
type Collector struct {
	registry *prometheus.Registry

	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
	tonsTransferred *prometheus.CounterVec
	rejectionsTotal *prometheus.CounterVec
}

// NewCollector creates a collector and registers its metrics
func NewCollector() (*Collector, error) {
	c := &Collector{
		registry: prometheus.NewRegistry(),

		// Command execution duration histogram
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Command execution duration distribution",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
			},
			[]string{"command", "status"},
		),

		// Command execution counter
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Total number of commands executed by type and status",
			},
			[]string{"command", "status"},
		),

		// Tons moved by successful transfers
		tonsTransferred: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tons_transferred_total",
				Help:      "Tons moved between planets and vessels by direction and planet",
			},
			[]string{"direction", "planet"},
		),

		// Rejected commands by error kind
		rejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "rejections_total",
				Help:      "Commands rejected by domain rules, by error kind",
			},
			[]string{"command", "kind"},
		),
	}

	for _, metric := range []prometheus.Collector{
		c.commandDuration,
		c.commandsTotal,
		c.tonsTransferred,
		c.rejectionsTotal,
	} {
		if err := c.registry.Register(metric); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Registry returns the registry the collector's metrics live in
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordCommandExecution records command execution metrics
func (c *Collector) RecordCommandExecution(commandName string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}

	c.commandDuration.WithLabelValues(commandName, status).Observe(duration)
	c.commandsTotal.WithLabelValues(commandName, status).Inc()
}

// RecordTransfer adds tons moved in direction ("load" or "unload") at planet
func (c *Collector) RecordTransfer(direction, planet string, tons float64) {
	c.tonsTransferred.WithLabelValues(direction, planet).Add(tons)
}

// RecordRejection counts a command refused with a domain error kind
func (c *Collector) RecordRejection(commandName, kind string) {
	c.rejectionsTotal.WithLabelValues(commandName, kind).Inc()
}

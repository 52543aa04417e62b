package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/spacecargo/internal/domain/shared"
)

// Summary gathers the registry and renders one line per counter series,
// e.g. `spacecargo_cargo_tons_transferred_total{direction="load",planet="Earth"} 30`.
// Histograms are omitted.
func (c *Collector) Summary() ([]string, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}

			labels := make([]string, 0, len(metric.GetLabel()))
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", label.GetName(), label.GetValue()))
			}

			lines = append(lines, fmt.Sprintf("%s{%s} %s",
				family.GetName(), strings.Join(labels, ","), shared.FormatTons(metric.GetCounter().GetValue())))
		}
	}

	sort.Strings(lines)
	return lines, nil
}

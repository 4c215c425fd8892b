package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FanoutOutcomes shows per-marketplace outcomes of multi-marketplace
// operations.
func FanoutOutcomes() *timeseries.PanelBuilder {
	return timeSeriesPanel("Fan-out Outcomes", "Per-marketplace outcomes of multi-marketplace operations",
		PromQuery("sc:fanout_outcomes:rate5m", "{{operation}} {{status}}", "A"))
}

// FanoutDuration shows p95 wall time of a whole fan-out.
func FanoutDuration() *timeseries.PanelBuilder {
	return timeSeriesPanel("Fan-out Duration (p95)", "95th percentile wall time of a fan-out by operation",
		PromQuery(quantile(0.95, "sc_fanout_duration_seconds", "operation"), "{{operation}}", "A")).
		Unit("s")
}

// FanoutPanics shows panics recovered inside fan-out tasks.
func FanoutPanics() *stat.PanelBuilder {
	return countStat("Recovered Panics (24h)", "Panics recovered inside fan-out tasks",
		increase("sc_fanout_panics_total", "24h"), 1, 5)
}

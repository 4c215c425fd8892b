package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// WarmupRuns shows token warm-up runs per hour by result.
func WarmupRuns() *timeseries.PanelBuilder {
	return timeSeriesPanel("Warm-up Runs", "Token warm-up runs per hour by result",
		PromQuery(by(increase("sc_warmup_runs_total", "1h"), "result"), "{{result}}", "A")).
		DrawStyle(common.GraphDrawStyleBars)
}

// NextWarmup counts down to the next scheduled warm-up. A negative value
// means the scheduler stopped firing.
func NextWarmup() *stat.PanelBuilder {
	return statPanel("Next Warm-up", "Time until the next scheduled token warm-up",
		PromQuery(sel("sc_scheduler_next_warmup_timestamp")+" - time()", "", "A")).
		Unit("s").
		Thresholds(thresholds("red", step{0, "green"}))
}

// NotificationFailures shows warm-up alerts that were not delivered.
func NotificationFailures() *stat.PanelBuilder {
	return countStat("Notification Failures (24h)", "Warm-up alerts that failed to reach Discord or SNS",
		increase("sc_notifications_sent_total", "24h", `result="error"`), 1, 5)
}

// PriceUpdates shows listing price submissions by marketplace and result.
func PriceUpdates() *timeseries.PanelBuilder {
	return timeSeriesPanel("Price Updates", "Listing price submissions per hour by marketplace and result",
		PromQuery(by(increase("sc_price_updates_total", "1h"), "marketplace", "result"), "{{marketplace}} {{result}}", "A")).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"sum"})).
		DrawStyle(common.GraphDrawStyleBars)
}

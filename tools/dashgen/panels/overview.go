package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/gauge"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// HealthzStat shows sc_healthz_up.
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Liveness of the server (1 = ok, 0 = failing)", "sc_healthz_up")
}

// ReadyzStat shows sc_readyz_up, which drops while the database is
// unreachable.
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness of the server (1 = ready, 0 = database unreachable)", "sc_readyz_up")
}

func upStat(title, description, metric string) *stat.PanelBuilder {
	return statPanel(title, description, PromQuery(metric, "", "A")).
		Thresholds(thresholds("red", step{1, "green"})).
		ColorMode(common.BigValueColorModeBackground).
		TextMode(common.BigValueTextModeValue)
}

// QuotaGauge shows the busiest marketplace's share of its daily Amazon
// call budget.
func QuotaGauge() *gauge.PanelBuilder {
	return gauge.NewPanelBuilder().
		Title("Amazon Quota %").
		Description("Highest per-marketplace daily API usage as percentage of the limit").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(fmt.Sprintf("max(sc_amazon_daily_usage) / %d * 100", DailyLimit), "", "A")).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(warnAt(80, 95)).
		ColorScheme(thresholdColors())
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return statPanel("Uptime", "Time since process start",
		PromQuery("time() - "+sel("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(thresholds("green"))
}

// ServerRequestRate shows requests per second served by the JSON API.
func ServerRequestRate() *timeseries.PanelBuilder {
	return timeSeriesPanel("API Requests", "JSON API requests per second",
		PromQuery("sc:http_requests:rate5m", "req/s", "A")).
		Unit("reqps")
}

// ServerLatency shows p50, p95 and p99 JSON API latency.
func ServerLatency() *timeseries.PanelBuilder {
	b := timeSeriesPanel("API Latency", "JSON API request duration percentiles").Unit("s")
	for i, p := range []struct {
		q      float64
		legend string
	}{{0.5, "p50"}, {0.95, "p95"}, {0.99, "p99"}} {
		b.WithTarget(PromQuery(quantile(p.q, "sc_http_request_duration_seconds"), p.legend, refID(i)))
	}
	return b
}

// ServerErrorRatio shows the share of JSON API responses that were 5xx.
func ServerErrorRatio() *timeseries.PanelBuilder {
	return timeSeriesPanel("API Error %", "Share of JSON API responses with a 5xx status",
		PromQuery("sc:http_errors:rate5m / sc:http_requests:rate5m * 100", "error %", "A")).
		Unit("percent").
		Thresholds(warnAt(1, 5)).
		ColorScheme(thresholdColors())
}

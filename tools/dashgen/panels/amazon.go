package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// APICallsRate shows SP-API and Ads API calls per second by marketplace.
func APICallsRate() *timeseries.PanelBuilder {
	return timeSeriesPanel("Amazon API Calls", "Amazon SP-API and Ads API calls per second by marketplace",
		PromQuery("sc:amazon_api_calls:rate5m", "{{marketplace}}", "A")).
		Unit("reqps")
}

// APILatency shows p95 Amazon call duration by operation.
func APILatency() *timeseries.PanelBuilder {
	return timeSeriesPanel("Amazon API Latency (p95)", "95th percentile Amazon API call duration by operation",
		PromQuery(quantile(0.95, "sc_amazon_api_duration_seconds", "operation"), "{{operation}}", "A")).
		Unit("s")
}

// ThrottledRate shows calls Amazon answered with 429.
func ThrottledRate() *timeseries.PanelBuilder {
	expr := by("sum(rate("+sel("sc_amazon_api_calls_total", `status="429"`)+"[5m]))", "marketplace")
	return timeSeriesPanel("Throttled Calls", "Amazon API calls rejected with HTTP 429 by marketplace",
		PromQuery(expr, "{{marketplace}}", "A")).
		Unit("reqps").
		Thresholds(warnAt(0.01, 0.1))
}

// LimitHits shows calls refused locally because a marketplace's daily
// budget was spent.
func LimitHits() *stat.PanelBuilder {
	return countStat("Daily Limit Hits (24h)",
		"Calls refused locally because a marketplace's daily budget was spent",
		by(increase("sc_amazon_daily_limit_hits_total", "24h"), "marketplace"), 1, 10).
		Height(TSHeight).
		Span(TSWidth)
}

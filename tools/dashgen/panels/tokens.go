package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenCacheHitRatio shows the share of access token lookups answered by
// the token cache rather than an LWA exchange.
func TokenCacheHitRatio() *timeseries.PanelBuilder {
	return timeSeriesPanel("Token Cache Hit %", "Access token lookups served from cache instead of an LWA exchange",
		PromQuery(
			"sc:token_cache_hits:rate5m / (sc:token_cache_hits:rate5m + sc:token_refreshes:rate5m) * 100",
			"{{scope}}", "A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		Thresholds(thresholds("red", step{80, "green"}))
}

// TokenRefreshes shows refresh-token exchanges by scope and result.
func TokenRefreshes() *timeseries.PanelBuilder {
	expr := by("sum(rate("+sel("sc_token_refreshes_total")+"[5m]))", "scope", "result")
	return timeSeriesPanel("Token Refreshes", "Refresh-token exchanges per second by scope and result",
		PromQuery(expr, "{{scope}} {{result}}", "A"))
}

// TokenInvalidations shows cached tokens dropped after a 401/403.
func TokenInvalidations() *timeseries.PanelBuilder {
	return timeSeriesPanel("Token Invalidations", "Cached tokens dropped after a 401/403 from Amazon",
		PromQuery(by(increase("sc_token_invalidations_total", "1h"), "scope", "marketplace"), "{{scope}} {{marketplace}}", "A")).
		Thresholds(warnAt(1, 5)).
		DrawStyle(common.GraphDrawStyleBars)
}

package rules

// RecordingRules pre-computes the rates the dashboard and alerts share.
func RecordingRules() PrometheusRule {
	return resource("sc-recording-rules", RuleGroup{
		Name: "sc-recording",
		Rules: []Rule{
			record("sc:http_requests:rate5m", `sum(rate(sc_http_requests_total[5m]))`),
			record("sc:http_errors:rate5m", `sum(rate(sc_http_requests_total{status=~"5.."}[5m]))`),
			record("sc:amazon_api_calls:rate5m", `sum(rate(sc_amazon_api_calls_total[5m])) by (marketplace)`),
			record("sc:token_cache_hits:rate5m", `sum(rate(sc_token_cache_hits_total[5m])) by (scope)`),
			record("sc:token_refreshes:rate5m", `sum(rate(sc_token_refreshes_total[5m])) by (scope)`),
			record("sc:fanout_outcomes:rate5m", `sum(rate(sc_fanout_outcomes_total[5m])) by (operation, status)`),
		},
	})
}

package main

import "errors"

// KnownMetrics is the set of metric names exported by seller-console plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"sc_http_request_duration_seconds":        true,
	"sc_http_request_duration_seconds_bucket": true,
	"sc_http_requests_total":                  true,

	// Health metrics.
	"sc_healthz_up": true,
	"sc_readyz_up":  true,

	// Amazon API metrics.
	"sc_amazon_api_calls_total":             true,
	"sc_amazon_api_duration_seconds_bucket": true,
	"sc_amazon_api_retries_total":           true,
	"sc_amazon_daily_usage":                 true,
	"sc_amazon_daily_limit_hits_total":      true,

	// Token metrics.
	"sc_token_cache_hits_total":    true,
	"sc_token_refreshes_total":     true,
	"sc_token_invalidations_total": true,

	// Fan-out metrics.
	"sc_fanout_outcomes_total":          true,
	"sc_fanout_duration_seconds_bucket": true,
	"sc_fanout_panics_total":            true,

	// Scheduler and notification metrics.
	"sc_scheduler_next_warmup_timestamp":      true,
	"sc_warmup_runs_total":                    true,
	"sc_notifications_sent_total":             true,
	"sc_notification_duration_seconds_bucket": true,

	// Pricing metrics.
	"sc_price_updates_total": true,

	// Recording rules.
	"sc:http_requests:rate5m":    true,
	"sc:http_errors:rate5m":      true,
	"sc:amazon_api_calls:rate5m": true,
	"sc:token_cache_hits:rate5m": true,
	"sc:token_refreshes:rate5m":  true,
	"sc:fanout_outcomes:rate5m":  true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}

// Package metrics defines Prometheus metrics for seller-console.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sc"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 when the liveness probe last succeeded.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 when the readiness probe last succeeded.",
	})
)

// Amazon API metrics.
var (
	AmazonAPICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amazon_api_calls_total",
		Help:      "Total Amazon API calls by marketplace, operation and HTTP status.",
	}, []string{"marketplace", "operation", "status"})

	AmazonAPIDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "amazon_api_duration_seconds",
		Help:      "Duration of Amazon API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"marketplace", "operation"})

	AmazonAPIRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amazon_api_retries_total",
		Help:      "Total Amazon API calls re-issued after an auth failure.",
	}, []string{"marketplace", "operation"})

	AmazonDailyUsage = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "amazon_daily_usage",
		Help:      "Amazon API calls within the rolling 24-hour window.",
	}, []string{"marketplace"})

	AmazonDailyLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "amazon_daily_limit_hits_total",
		Help:      "Total number of times the daily Amazon API limit was reached.",
	}, []string{"marketplace"})
)

// Token metrics.
var (
	TokenCacheHitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_cache_hits_total",
		Help:      "Access token lookups served from the token cache.",
	}, []string{"scope", "marketplace"})

	TokenRefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_refreshes_total",
		Help:      "Refresh-token exchanges by scope, marketplace and result.",
	}, []string{"scope", "marketplace", "result"})

	TokenInvalidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_invalidations_total",
		Help:      "Cached tokens dropped after a provider auth failure.",
	}, []string{"scope", "marketplace"})
)

// Fan-out metrics.
var (
	FanoutOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_outcomes_total",
		Help:      "Per-marketplace fan-out outcomes by operation and status.",
	}, []string{"operation", "status"})

	FanoutDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "fanout_duration_seconds",
		Help:      "Wall time of a whole fan-out in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	FanoutPanicsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fanout_panics_total",
		Help:      "Panics recovered inside fan-out tasks.",
	}, []string{"operation"})
)

// Scheduler metrics.
var (
	SchedulerNextWarmupTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scheduler_next_warmup_timestamp",
		Help:      "Unix timestamp of the next scheduled token warm-up.",
	})

	WarmupRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "warmup_runs_total",
		Help:      "Token warm-up runs by result.",
	}, []string{"result"})
)

// Notification metrics.
var (
	NotificationsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Warm-up failure notifications by result.",
	}, []string{"result"})

	NotificationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notification_duration_seconds",
		Help:      "Webhook delivery latency in seconds.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)

// Pricing metrics.
var (
	PriceUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_updates_total",
		Help:      "Listing price submissions by marketplace and result.",
	}, []string{"marketplace", "result"})
)

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, AmazonAPICallsTotal)
	assert.NotNil(t, AmazonAPIDuration)
	assert.NotNil(t, AmazonAPIRetriesTotal)
	assert.NotNil(t, AmazonDailyUsage)
	assert.NotNil(t, AmazonDailyLimitHits)
	assert.NotNil(t, TokenCacheHitsTotal)
	assert.NotNil(t, TokenRefreshesTotal)
	assert.NotNil(t, TokenInvalidationsTotal)
	assert.NotNil(t, FanoutOutcomesTotal)
	assert.NotNil(t, FanoutDuration)
	assert.NotNil(t, FanoutPanicsTotal)
	assert.NotNil(t, SchedulerNextWarmupTimestamp)
	assert.NotNil(t, WarmupRunsTotal)
	assert.NotNil(t, NotificationsSentTotal)
	assert.NotNil(t, NotificationDuration)
	assert.NotNil(t, PriceUpdatesTotal)
}

func TestMetricNamesUseNamespace(t *testing.T) {
	t.Parallel()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found int
	for _, mf := range families {
		if mf.GetName() == "sc_healthz_up" || mf.GetName() == "sc_readyz_up" {
			assert.Equal(t, dto.MetricType_GAUGE, mf.GetType())
			found++
		}
	}
	assert.Equal(t, 2, found)
}

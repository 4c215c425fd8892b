// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/jadehome/seller-console/tools/dashgen/panels"
)

// BuildOverview constructs the Seller Console overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Seller Console Overview").
		Uid("sc-overview").
		Tags([]string{"sc", "seller-console", "amazon"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.QuotaGauge()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("JSON API").
		WithPanel(panels.ServerRequestRate()).
		WithPanel(panels.ServerLatency()).
		WithPanel(panels.ServerErrorRatio()))

	b.WithRow(dashboard.NewRowBuilder("Amazon API").
		WithPanel(panels.APICallsRate()).
		WithPanel(panels.APILatency()).
		WithPanel(panels.ThrottledRate()).
		WithPanel(panels.LimitHits()))

	b.WithRow(dashboard.NewRowBuilder("Tokens").
		WithPanel(panels.TokenCacheHitRatio()).
		WithPanel(panels.TokenRefreshes()).
		WithPanel(panels.TokenInvalidations()))

	b.WithRow(dashboard.NewRowBuilder("Fan-out").
		WithPanel(panels.FanoutOutcomes()).
		WithPanel(panels.FanoutDuration()).
		WithPanel(panels.FanoutPanics()))

	b.WithRow(dashboard.NewRowBuilder("Warm-up & Pricing").
		WithPanel(panels.WarmupRuns()).
		WithPanel(panels.NextWarmup()).
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.PriceUpdates()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}

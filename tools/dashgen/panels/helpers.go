// Package panels builds the panels of the seller-console overview
// dashboard.
package panels

import (
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DailyLimit is the default per-marketplace daily Amazon call budget
// (amazon.rate_limit.daily_limit).
const DailyLimit = 20000

// Job is the Prometheus job label of the scraped server.
const Job = `job="seller-console"`

// Grid sizes on Grafana's 24-column layout.
const (
	StatWidth  = 6
	StatHeight = 4

	TSWidth  = 12
	TSHeight = 8
)

// DSRef points panels at the ${datasource} variable.
func DSRef() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// PromQuery builds one query target.
func PromQuery(expr, legendFormat, refID string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legendFormat).
		RefId(refID)
}

// sel renders metric restricted to the server job and any extra matchers.
func sel(metric string, matchers ...string) string {
	return metric + "{" + strings.Join(append([]string{Job}, matchers...), ",") + "}"
}

// by appends a grouping clause when labels are given.
func by(expr string, labels ...string) string {
	if len(labels) == 0 {
		return expr
	}
	return expr + " by (" + strings.Join(labels, ", ") + ")"
}

// quantile is the q-quantile of a seconds histogram over 5m.
func quantile(q float64, histogram string, labels ...string) string {
	inner := by(fmt.Sprintf("sum(rate(%s[5m]))", sel(histogram+"_bucket")), append([]string{"le"}, labels...)...)
	return fmt.Sprintf("histogram_quantile(%g, %s)", q, inner)
}

// increase sums a counter's increase over window.
func increase(counter, window string, matchers ...string) string {
	return fmt.Sprintf("sum(increase(%s[%s]))", sel(counter, matchers...), window)
}

// refID returns A, B, C... for the i-th target of a panel.
func refID(i int) string {
	return string(rune('A' + i))
}

// step is a threshold color starting at a value.
type step struct {
	at    float64
	color string
}

// thresholds starts at base and switches color at each step.
func thresholds(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	out := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		out = append(out, dashboard.Threshold{Value: cog.ToPtr(s.at), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(out)
}

// warnAt is green, then yellow and red as a value grows.
func warnAt(yellow, red float64) cog.Builder[dashboard.ThresholdsConfig] {
	return thresholds("green", step{yellow, "yellow"}, step{red, "red"})
}

func thresholdColors() cog.Builder[dashboard.FieldColor] {
	return dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds)
}

// timeSeriesPanel is a half-width line graph with a table legend. Callers
// override unit, thresholds or draw style where a panel needs it.
func timeSeriesPanel(title, description string, targets ...*prometheus.DataqueryBuilder) *timeseries.PanelBuilder {
	b := timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		FillOpacity(10).
		LineWidth(2).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"mean", "max"})).
		Tooltip(common.NewVizTooltipOptionsBuilder().
			Mode(common.TooltipDisplayModeMulti).
			Sort(common.SortOrderDescending)).
		Thresholds(thresholds("green")).
		ColorScheme(dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic)).
		DrawStyle(common.GraphDrawStyleLine)
	for _, t := range targets {
		b.WithTarget(t)
	}
	return b
}

// statPanel is a single value colored by its thresholds.
func statPanel(title, description string, target *prometheus.DataqueryBuilder) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(target).
		ColorScheme(thresholdColors()).
		GraphMode(common.BigValueGraphModeNone)
}

// countStat is a background-colored counter that turns yellow, then red.
func countStat(title, description, expr string, yellow, red float64) *stat.PanelBuilder {
	return statPanel(title, description, PromQuery(expr, "", "A")).
		Thresholds(warnAt(yellow, red)).
		ColorMode(common.BigValueColorModeBackground)
}

package panels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "selector with matcher",
			got:  sel("sc_amazon_api_calls_total", `status="429"`),
			want: `sc_amazon_api_calls_total{job="seller-console",status="429"}`,
		},
		{
			name: "quantile grouped by operation",
			got:  quantile(0.95, "sc_fanout_duration_seconds", "operation"),
			want: `histogram_quantile(0.95, sum(rate(sc_fanout_duration_seconds_bucket{job="seller-console"}[5m])) by (le, operation))`,
		},
		{
			name: "increase without grouping",
			got:  increase("sc_fanout_panics_total", "24h"),
			want: `sum(increase(sc_fanout_panics_total{job="seller-console"}[24h]))`,
		},
		{
			name: "increase grouped",
			got:  by(increase("sc_price_updates_total", "1h"), "marketplace", "result"),
			want: `sum(increase(sc_price_updates_total{job="seller-console"}[1h])) by (marketplace, result)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestRefID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"A", "B", "C"}, []string{refID(0), refID(1), refID(2)})
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/jadehome/seller-console/internal/api/middleware"
	"github.com/jadehome/seller-console/internal/metrics"
)

func counterValue(t *testing.T, labels ...string) float64 {
	t.Helper()
	counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(labels...)
	require.NoError(t, err)
	m := &io_prometheus_client.Metric{}
	require.NoError(t, counter.Write(m))
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		route      string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "labels by route template",
			method: http.MethodGet,
			route:  "/api/v1/prices/:marketplace/:sku",
			target: "/api/v1/prices/US/SKU-1",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]bool{"success": true})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records handler errors with their final status",
			method: http.MethodGet,
			route:  "/api/v1/orders/:marketplace",
			target: "/api/v1/orders/US",
			handler: func(_ echo.Context) error {
				return echo.NewHTTPError(http.StatusGatewayTimeout)
			},
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:   "records POST request",
			method: http.MethodPost,
			route:  "/api/v1/campaigns/budget-usage",
			target: "/api/v1/campaigns/budget-usage",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			wantStatus: http.StatusAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.route, tt.handler)

			req := httptest.NewRequest(tt.method, tt.target, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)
			assert.Positive(t, counterValue(t, tt.method, tt.route, statusStr))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.route, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_SkipsProbes(t *testing.T) {
	e := echo.New()
	e.Use(mw.Metrics())
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	before := counterValue(t, http.MethodGet, "/healthz", "200")

	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.InDelta(t, before, counterValue(t, http.MethodGet, "/healthz", "200"), 0)
}

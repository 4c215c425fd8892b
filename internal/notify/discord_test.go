package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/metrics"
)

func testAlert(tokenError bool) *WarmupAlert {
	return &WarmupAlert{
		At: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC),
		Failures: []Failure{
			{Scope: "sp", Marketplace: "UK", Error: "invalid_grant: refresh token revoked", TokenError: tokenError},
			{Scope: "ads", Marketplace: "AE", Error: "context deadline exceeded"},
		},
	}
}

func TestDiscordNotifier_SendWarmupAlert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		alert      *WarmupAlert
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
		wantDesc   bool
	}{
		{
			name:       "revoked token is red with re-auth hint",
			alert:      testAlert(true),
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
			wantDesc:   true,
		},
		{
			name:       "transient failures are orange",
			alert:      testAlert(false),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "discord returns 429 rate limited",
			alert:      testAlert(false),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			alert:      testAlert(false),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.SendWarmupAlert(context.Background(), tt.alert)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Equal(t, "Token warm-up failed for 2 marketplace(s)", embed.Title)
			assert.Equal(t, "2026-03-01T06:00:00Z", embed.Timestamp)
			assert.Equal(t, tt.wantDesc, embed.Description != "")

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, "context deadline exceeded", fieldMap["AE / ads"])
			if tt.alert.Failures[0].TokenError {
				assert.Contains(t, fieldMap, "UK / sp (re-auth)")
			} else {
				assert.Contains(t, fieldMap, "UK / sp")
			}
		})
	}
}

func TestBuildEmbed_FieldLimit(t *testing.T) {
	t.Parallel()

	alert := &WarmupAlert{}
	for i := range 30 {
		alert.Failures = append(alert.Failures, Failure{
			Scope:       "sp",
			Marketplace: fmt.Sprintf("M%02d", i),
			Error:       "boom",
		})
	}

	embed := buildEmbed(alert)
	require.Len(t, embed.Fields, maxEmbedFields)
	last := embed.Fields[maxEmbedFields-1]
	assert.Equal(t, "More", last.Name)
	assert.Contains(t, last.Value, "and 6 more failures")
	assert.Empty(t, embed.Timestamp)
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", truncate("", 10))
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	err := d.SendWarmupAlert(context.Background(), testAlert(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	err := d.SendWarmupAlert(context.Background(), testAlert(false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestSendWarmupAlert_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	d := NewDiscordNotifier(srv.URL)
	require.NoError(t, d.SendWarmupAlert(context.Background(), testAlert(false)))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}

// compile-time interface check.
var _ Notifier = (*DiscordNotifier)(nil)

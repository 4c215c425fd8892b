package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/jadehome/seller-console/internal/metrics"
)

const (
	colorRed    = 0xE74C3C // refresh token rejected
	colorOrange = 0xE67E22 // transient failures

	// Discord rejects embeds with more than 25 fields.
	maxEmbedFields = 25
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// SendWarmupAlert posts the alert as a single Discord embed.
func (d *DiscordNotifier) SendWarmupAlert(ctx context.Context, alert *WarmupAlert) error {
	start := time.Now()
	err := d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{buildEmbed(alert)}})
	metrics.NotificationDuration.Observe(time.Since(start).Seconds())

	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.NotificationsSentTotal.WithLabelValues(result).Inc()
	return err
}

func buildEmbed(alert *WarmupAlert) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("Token warm-up failed for %d marketplace(s)", len(alert.Failures)),
		Color: colorOrange,
	}
	if !alert.At.IsZero() {
		embed.Timestamp = alert.At.UTC().Format(time.RFC3339)
	}
	if alert.NeedsReauth() {
		embed.Color = colorRed
		embed.Description = "A refresh token was rejected. Re-authorise the app for the marked marketplaces."
	}

	limit := min(len(alert.Failures), maxEmbedFields)
	for _, f := range alert.Failures[:limit] {
		name := f.Marketplace + " / " + f.Scope
		if f.TokenError {
			name += " (re-auth)"
		}
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name:   name,
			Value:  truncate(f.Error, 1024),
			Inline: false,
		})
	}
	if extra := len(alert.Failures) - limit; extra > 0 {
		embed.Fields[limit-1] = discordEmbedField{
			Name:  "More",
			Value: fmt.Sprintf("... and %d more failures, see the server logs.", extra+1),
		}
	}
	return embed
}

func truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

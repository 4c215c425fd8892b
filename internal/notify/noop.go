package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendWarmupAlert logs and discards the alert.
func (n *NoOpNotifier) SendWarmupAlert(_ context.Context, alert *WarmupAlert) error {
	n.log.Debug("warm-up alert discarded (no webhook configured)",
		"failures", len(alert.Failures),
		"needs_reauth", alert.NeedsReauth(),
	)
	return nil
}

// Package notify delivers operator alerts when background token warm-up
// fails, most often because a refresh token was revoked or expired.
package notify

import (
	"context"
	"errors"
	"time"
)

// Failure is one marketplace that could not be warmed.
type Failure struct {
	Scope       string
	Marketplace string
	Error       string
	// TokenError is set when the refresh token itself was rejected and an
	// operator has to re-authorise the app.
	TokenError bool
}

// WarmupAlert summarises a failed warm-up run.
type WarmupAlert struct {
	At       time.Time
	Failures []Failure
}

// NeedsReauth reports whether any failure requires a new refresh token.
func (a *WarmupAlert) NeedsReauth() bool {
	for _, f := range a.Failures {
		if f.TokenError {
			return true
		}
	}
	return false
}

// Notifier sends warm-up alerts.
type Notifier interface {
	SendWarmupAlert(ctx context.Context, alert *WarmupAlert) error
}

// Multi sends every alert to all notifiers and joins their errors.
type Multi []Notifier

// SendWarmupAlert implements Notifier.
func (m Multi) SendWarmupAlert(ctx context.Context, alert *WarmupAlert) error {
	var errs []error
	for _, n := range m {
		if err := n.SendWarmupAlert(ctx, alert); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

package amazon

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// ErrDailyLimitReached is returned when a marketplace's daily call budget
// is exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter throttles calls to one marketplace with a token bucket and
// caps them with a rolling 24-hour quota. The window starts at the first
// call after construction or reset.
type RateLimiter struct {
	limiter  *rate.Limiter
	maxDaily int64
	nowFunc  func() time.Time

	mu      sync.Mutex
	daily   int64
	resetAt time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a limiter allowing perSecond calls with the given
// burst and at most maxDaily calls per window. maxDaily <= 0 disables the
// daily cap.
func NewRateLimiter(perSecond float64, burst int, maxDaily int64, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.resetAt = r.nowFunc().Add(24 * time.Hour)
	return r
}

// Wait blocks until a call is allowed or ctx is done. It returns
// ErrDailyLimitReached without waiting when the quota is spent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	r.resetIfDueLocked()
	if r.maxDaily > 0 && r.daily >= r.maxDaily {
		used := r.daily
		r.mu.Unlock()
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, used, r.maxDaily)
	}
	r.daily++
	r.mu.Unlock()

	if err := r.limiter.Wait(ctx); err != nil {
		r.mu.Lock()
		r.daily--
		r.mu.Unlock()
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}

// Quota is a point-in-time view of a limiter.
type Quota struct {
	Marketplace marketplace.Code `json:"marketplace" example:"US"`
	Used        int64            `json:"used"`
	Limit       int64            `json:"limit"`
	Remaining   int64            `json:"remaining"`
	ResetAt     time.Time        `json:"reset_at"`
}

// Quota reports usage for the current window.
func (r *RateLimiter) Quota() Quota {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetIfDueLocked()

	q := Quota{Used: r.daily, Limit: r.maxDaily, ResetAt: r.resetAt}
	if r.maxDaily > 0 {
		q.Remaining = max(r.maxDaily-r.daily, 0)
	}
	return q
}

func (r *RateLimiter) resetIfDueLocked() {
	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily = 0
		r.resetAt = now.Add(24 * time.Hour)
	}
}

// RateLimitConfig describes the limiter built for each marketplace.
type RateLimitConfig struct {
	PerSecond float64
	Burst     int
	MaxDaily  int64
}

// Limiters holds one RateLimiter per marketplace.
type Limiters map[marketplace.Code]*RateLimiter

// NewLimiters builds a limiter for every code using cfg.
func NewLimiters(codes []marketplace.Code, cfg RateLimitConfig, opts ...RateLimiterOption) Limiters {
	l := make(Limiters, len(codes))
	for _, code := range codes {
		l[code] = NewRateLimiter(cfg.PerSecond, cfg.Burst, cfg.MaxDaily, opts...)
	}
	return l
}

// Quotas returns the quota of every limiter in canonical marketplace order.
func (l Limiters) Quotas(order []marketplace.Code) []Quota {
	out := make([]Quota, 0, len(l))
	for _, code := range order {
		r, ok := l[code]
		if !ok {
			continue
		}
		q := r.Quota()
		q.Marketplace = code
		out = append(out, q)
	}
	return out
}

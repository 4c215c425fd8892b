// Package fanout runs one operation per marketplace concurrently and
// collects every outcome, so a failure in one marketplace never hides the
// results of the others.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
)

const tracerName = "github.com/jadehome/seller-console/internal/fanout"

// Status classifies one marketplace's outcome.
type Status string

// Outcome statuses.
const (
	StatusSuccess   Status = "success"
	StatusNotListed Status = "not_listed"
	StatusError     Status = "error"
)

// Outcome is the result of the operation for one marketplace.
type Outcome[T any] struct {
	Status     Status `json:"status"                enum:"success,not_listed,error"`
	Data       *T     `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
	TokenError bool   `json:"token_error,omitempty"`
}

// Result holds exactly one Outcome per requested marketplace.
type Result[T any] map[marketplace.Code]Outcome[T]

// Count returns how many outcomes have status s.
func (r Result[T]) Count(s Status) int {
	n := 0
	for _, o := range r {
		if o.Status == s {
			n++
		}
	}
	return n
}

// Op is the per-marketplace operation.
type Op[T any] func(ctx context.Context, code marketplace.Code) (T, error)

type options struct {
	downgradeTokenErrors bool
	concurrency          int
	operation            string
	logger               *slog.Logger
}

// Option configures ForEachMarketplace.
type Option func(*options)

// DowngradeTokenErrors reports token acquisition failures as not_listed
// (with TokenError set) instead of error.
func DowngradeTokenErrors() Option {
	return func(o *options) {
		o.downgradeTokenErrors = true
	}
}

// WithConcurrency bounds how many marketplaces run at once. Zero or
// negative means unbounded.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithOperationName labels metrics, spans and logs.
func WithOperationName(name string) Option {
	return func(o *options) {
		o.operation = name
	}
}

// WithLogger sets the logger used for failed and panicking operations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// ForEachMarketplace runs op for every code and waits for all of them.
// Duplicate codes run once. Errors and panics are captured per marketplace.
func ForEachMarketplace[T any](
	ctx context.Context,
	targets []marketplace.Code,
	op Op[T],
	opts ...Option,
) Result[T] {
	o := options{operation: "fanout", logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "fanout."+o.operation)
	span.SetAttributes(attribute.Int("marketplaces", len(targets)))
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.FanoutDuration.WithLabelValues(o.operation).Observe(time.Since(start).Seconds())
	}()

	unique := make([]marketplace.Code, 0, len(targets))
	seen := make(map[marketplace.Code]struct{}, len(targets))
	for _, code := range targets {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}

	var sem chan struct{}
	if o.concurrency > 0 {
		sem = make(chan struct{}, o.concurrency)
	}

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out = make(Result[T], len(unique))
	)
	for _, code := range unique {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			outcome := run(ctx, code, op, &o)
			metrics.FanoutOutcomesTotal.WithLabelValues(o.operation, string(outcome.Status)).Inc()

			mu.Lock()
			out[code] = outcome
			mu.Unlock()
		}()
	}
	wg.Wait()

	failed := out.Count(StatusError)
	span.SetAttributes(attribute.Int("failed", failed))
	if failed == len(out) && failed > 0 {
		span.SetStatus(codes.Error, "all marketplaces failed")
	}
	return out
}

func run[T any](ctx context.Context, code marketplace.Code, op Op[T], o *options) (outcome Outcome[T]) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fanout."+o.operation+".marketplace")
	span.SetAttributes(attribute.String("marketplace", string(code)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			metrics.FanoutPanicsTotal.WithLabelValues(o.operation).Inc()
			o.logger.Error("marketplace operation panicked",
				"operation", o.operation,
				"marketplace", code,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			err := fmt.Errorf("panic: %v", r)
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			outcome = Outcome[T]{Status: StatusError, Error: err.Error()}
		}
	}()

	data, err := op(ctx, code)
	outcome = classify(data, err, o.downgradeTokenErrors)
	if outcome.Status == StatusError {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome.Error)
		o.logger.Warn("marketplace operation failed",
			"operation", o.operation,
			"marketplace", code,
			"token_error", outcome.TokenError,
			"error", err,
		)
	}
	return outcome
}

func classify[T any](data T, err error, downgrade bool) Outcome[T] {
	switch {
	case err == nil:
		return Outcome[T]{Status: StatusSuccess, Data: &data}
	case errors.Is(err, amazon.ErrNotListed):
		return Outcome[T]{Status: StatusNotListed, Data: &data}
	case amazon.IsTokenError(err):
		if downgrade {
			return Outcome[T]{Status: StatusNotListed, Error: err.Error(), TokenError: true}
		}
		return Outcome[T]{Status: StatusError, Error: err.Error(), TokenError: true}
	default:
		return Outcome[T]{Status: StatusError, Error: err.Error()}
	}
}

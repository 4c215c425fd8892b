// Package scheduler runs background jobs for seller-console. The only job
// today keeps access tokens warm so interactive requests rarely pay for an
// LWA exchange.
package scheduler

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
	"github.com/jadehome/seller-console/internal/notify"
)

const (
	defaultRunTimeout = 2 * time.Minute
	alertTimeout      = 15 * time.Second
)

// TokenSource yields access tokens for one scope.
type TokenSource interface {
	Scope() amazon.Scope
	AccessToken(ctx context.Context, code marketplace.Code) (string, error)
}

// Target pairs a token source with the marketplaces it should warm.
type Target struct {
	Source TokenSource
	Codes  []marketplace.Code
}

// Report holds the warm-up outcome per scope.
type Report map[amazon.Scope]fanout.Result[struct{}]

// Failed returns the number of marketplaces that failed in any scope.
func (r Report) Failed() int {
	n := 0
	for _, res := range r {
		n += res.Count(fanout.StatusError)
	}
	return n
}

// Alert converts the failed marketplaces of r into a notification.
func (r Report) Alert(at time.Time) *notify.WarmupAlert {
	alert := &notify.WarmupAlert{At: at}
	for scope, res := range r {
		for code, o := range res {
			if o.Status != fanout.StatusError {
				continue
			}
			alert.Failures = append(alert.Failures, notify.Failure{
				Scope:       string(scope),
				Marketplace: string(code),
				Error:       o.Error,
				TokenError:  o.TokenError,
			})
		}
	}
	slices.SortFunc(alert.Failures, func(a, b notify.Failure) int {
		return cmp.Or(cmp.Compare(a.Scope, b.Scope), cmp.Compare(a.Marketplace, b.Marketplace))
	})
	return alert
}

// Scheduler runs the token warm-up job on a cron schedule.
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	targets  []Target
	log      *slog.Logger
	notifier notify.Notifier
	timeout  time.Duration
	nowFunc  func() time.Time

	mu      sync.Mutex
	running bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRunTimeout bounds a single warm-up run.
func WithRunTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		s.timeout = d
	}
}

// WithNotifier sets where failed scheduled runs are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(s *Scheduler) {
		s.notifier = n
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(s *Scheduler) {
		s.nowFunc = f
	}
}

// New creates a Scheduler that warms every target on spec, a standard cron
// expression or descriptor such as "@every 45m".
func New(spec string, targets []Target, log *slog.Logger, opts ...Option) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing warm-up schedule %q: %w", spec, err)
	}

	s := &Scheduler{
		cron:     cron.New(),
		schedule: schedule,
		targets:  targets,
		log:      log,
		timeout:  defaultRunTimeout,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notifier == nil {
		s.notifier = notify.NewNoOpNotifier(log)
	}

	s.cron.Schedule(schedule, cron.FuncJob(s.runScheduled))
	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "next_warmup", s.NextRun())
	s.syncNextRun()
	s.cron.Start()
}

// Stop stops the scheduler. The returned context is done once a running
// job has finished.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// NextRun returns when the warm-up job fires next.
func (s *Scheduler) NextRun() time.Time {
	return s.schedule.Next(s.nowFunc())
}

// RunWarmup fetches an access token for every target marketplace. Tokens
// still valid in the cache are left alone, so a run only pays for the
// exchanges that are due.
func (s *Scheduler) RunWarmup(ctx context.Context) Report {
	report := make(Report, len(s.targets))
	for _, t := range s.targets {
		if len(t.Codes) == 0 {
			continue
		}
		scope := t.Source.Scope()
		report[scope] = fanout.ForEachMarketplace(ctx, t.Codes,
			func(ctx context.Context, code marketplace.Code) (struct{}, error) {
				_, err := t.Source.AccessToken(ctx, code)
				return struct{}{}, err
			},
			fanout.WithOperationName("token_warmup_"+string(scope)),
			fanout.WithLogger(s.log),
		)
	}

	result := "success"
	if report.Failed() > 0 {
		result = "error"
	}
	metrics.WarmupRunsTotal.WithLabelValues(result).Inc()
	return report
}

func (s *Scheduler) runScheduled() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.log.Warn("token warm-up still running, skipping")
		return
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		s.syncNextRun()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := s.nowFunc()
	report := s.RunWarmup(ctx)
	if failed := report.Failed(); failed > 0 {
		s.log.Warn("token warm-up finished with failures", "failed", failed)
		// The run context may already be spent by a slow run.
		alertCtx, alertCancel := context.WithTimeout(context.Background(), alertTimeout)
		defer alertCancel()
		if err := s.notifier.SendWarmupAlert(alertCtx, report.Alert(s.nowFunc())); err != nil {
			s.log.Error("sending warm-up alert", "error", err)
		}
		return
	}
	s.log.Info("token warm-up finished", "duration", time.Since(start))
}

func (s *Scheduler) syncNextRun() {
	metrics.SchedulerNextWarmupTimestamp.Set(float64(s.NextRun().Unix()))
}

package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
	"github.com/jadehome/seller-console/internal/notify"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeSource struct {
	scope amazon.Scope
	fail  map[marketplace.Code]error

	mu    sync.Mutex
	calls []marketplace.Code
}

func (f *fakeSource) Scope() amazon.Scope { return f.scope }

func (f *fakeSource) AccessToken(_ context.Context, code marketplace.Code) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, code)
	f.mu.Unlock()
	if err := f.fail[code]; err != nil {
		return "", err
	}
	return "Atza|" + string(code), nil
}

func TestNew_InvalidSpec(t *testing.T) {
	t.Parallel()

	_, err := New("every now and then", nil, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing warm-up schedule")
}

func TestNew_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := New("@every 45m", nil, quietLogger())
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestScheduler_NextRun(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sched, err := New("@every 45m", nil, quietLogger(),
		WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	assert.Equal(t, now.Add(45*time.Minute), sched.NextRun())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, err := New("@every 1h", nil, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()

	assert.Greater(t, ptestutil.ToFloat64(metrics.SchedulerNextWarmupTimestamp), float64(0))
}

func TestScheduler_RunWarmup(t *testing.T) {
	sp := &fakeSource{scope: amazon.ScopeSP}
	ads := &fakeSource{
		scope: amazon.ScopeAds,
		fail: map[marketplace.Code]error{
			marketplace.UK: &amazon.TokenAcquisitionError{
				Marketplace: marketplace.UK,
				Scope:       amazon.ScopeAds,
				StatusCode:  400,
				Err:         errors.New("invalid_grant"),
			},
		},
	}

	sched, err := New("@every 45m", []Target{
		{Source: sp, Codes: []marketplace.Code{marketplace.US, marketplace.CA, marketplace.UK}},
		{Source: ads, Codes: []marketplace.Code{marketplace.US, marketplace.UK}},
	}, quietLogger())
	require.NoError(t, err)

	errorsBefore := ptestutil.ToFloat64(metrics.WarmupRunsTotal.WithLabelValues("error"))

	report := sched.RunWarmup(context.Background())

	require.Len(t, report, 2)
	assert.Len(t, report[amazon.ScopeSP], 3)
	assert.Equal(t, 3, report[amazon.ScopeSP].Count(fanout.StatusSuccess))
	assert.Equal(t, fanout.StatusSuccess, report[amazon.ScopeAds][marketplace.US].Status)
	assert.Equal(t, fanout.StatusError, report[amazon.ScopeAds][marketplace.UK].Status)
	assert.True(t, report[amazon.ScopeAds][marketplace.UK].TokenError)
	assert.Equal(t, 1, report.Failed())

	assert.ElementsMatch(t,
		[]marketplace.Code{marketplace.US, marketplace.CA, marketplace.UK}, sp.calls)
	assert.ElementsMatch(t, []marketplace.Code{marketplace.US, marketplace.UK}, ads.calls)

	assert.InDelta(t, errorsBefore+1,
		ptestutil.ToFloat64(metrics.WarmupRunsTotal.WithLabelValues("error")), 0)
}

func TestScheduler_RunWarmup_SkipsEmptyTargets(t *testing.T) {
	ads := &fakeSource{scope: amazon.ScopeAds}
	sched, err := New("@every 45m", []Target{{Source: ads}}, quietLogger())
	require.NoError(t, err)

	successBefore := ptestutil.ToFloat64(metrics.WarmupRunsTotal.WithLabelValues("success"))

	report := sched.RunWarmup(context.Background())

	assert.Empty(t, report)
	assert.Empty(t, ads.calls)
	assert.InDelta(t, successBefore+1,
		ptestutil.ToFloat64(metrics.WarmupRunsTotal.WithLabelValues("success")), 0)
}

func TestScheduler_RunScheduledSkipsOverlap(t *testing.T) {
	sp := &fakeSource{scope: amazon.ScopeSP}
	sched, err := New("@every 45m", []Target{
		{Source: sp, Codes: []marketplace.Code{marketplace.US}},
	}, quietLogger())
	require.NoError(t, err)

	sched.running = true
	sched.runScheduled()
	assert.Empty(t, sp.calls)

	sched.running = false
	sched.runScheduled()
	assert.Equal(t, []marketplace.Code{marketplace.US}, sp.calls)
}

type recordingNotifier struct {
	alerts  []*notify.WarmupAlert
	ctxErrs []error
}

func (r *recordingNotifier) SendWarmupAlert(ctx context.Context, alert *notify.WarmupAlert) error {
	r.alerts = append(r.alerts, alert)
	r.ctxErrs = append(r.ctxErrs, ctx.Err())
	return nil
}

// stallingSource blocks until the run context expires.
type stallingSource struct{}

func (stallingSource) Scope() amazon.Scope { return amazon.ScopeSP }

func (stallingSource) AccessToken(ctx context.Context, _ marketplace.Code) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestScheduler_RunScheduledAlertsAfterTimeout(t *testing.T) {
	rec := &recordingNotifier{}
	sched, err := New("@every 45m", []Target{
		{Source: stallingSource{}, Codes: []marketplace.Code{marketplace.UK}},
	}, quietLogger(), WithNotifier(rec), WithRunTimeout(10*time.Millisecond))
	require.NoError(t, err)

	sched.runScheduled()

	require.Len(t, rec.alerts, 1)
	assert.NoError(t, rec.ctxErrs[0], "alert must be sent on a live context")
	require.Len(t, rec.alerts[0].Failures, 1)
	assert.Equal(t, "UK", rec.alerts[0].Failures[0].Marketplace)
}

func TestScheduler_RunScheduledNotifiesFailures(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sp := &fakeSource{
		scope: amazon.ScopeSP,
		fail: map[marketplace.Code]error{
			marketplace.SA: &amazon.TokenAcquisitionError{
				Marketplace: marketplace.SA,
				Scope:       amazon.ScopeSP,
				StatusCode:  400,
				Err:         errors.New("invalid_grant"),
			},
			marketplace.AE: errors.New("dial tcp: i/o timeout"),
		},
	}
	rec := &recordingNotifier{}

	sched, err := New("@every 45m", []Target{
		{Source: sp, Codes: []marketplace.Code{marketplace.US, marketplace.AE, marketplace.SA}},
	}, quietLogger(), WithNotifier(rec), WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	sched.runScheduled()

	require.Len(t, rec.alerts, 1)
	alert := rec.alerts[0]
	assert.Equal(t, now, alert.At)
	require.Len(t, alert.Failures, 2)
	assert.Equal(t, "AE", alert.Failures[0].Marketplace)
	assert.False(t, alert.Failures[0].TokenError)
	assert.Equal(t, "SA", alert.Failures[1].Marketplace)
	assert.True(t, alert.Failures[1].TokenError)
	assert.True(t, alert.NeedsReauth())
}

func TestScheduler_RunScheduledQuietOnSuccess(t *testing.T) {
	rec := &recordingNotifier{}
	sched, err := New("@every 45m", []Target{
		{Source: &fakeSource{scope: amazon.ScopeSP}, Codes: []marketplace.Code{marketplace.US}},
	}, quietLogger(), WithNotifier(rec))
	require.NoError(t, err)

	sched.runScheduled()
	assert.Empty(t, rec.alerts)
}

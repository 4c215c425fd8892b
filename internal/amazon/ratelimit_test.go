package amazon_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/marketplace"
)

func TestRateLimiter_Wait(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rate    float64
		burst   int
		daily   int64
		calls   int
		wantErr bool
	}{
		{name: "allows calls within rate", rate: 100, burst: 10, daily: 5000, calls: 3},
		{name: "allows burst", rate: 100, burst: 5, daily: 5000, calls: 5},
		{name: "no daily cap when zero", rate: 100, burst: 10, daily: 0, calls: 20},
		{name: "rejects when daily limit reached", rate: 100, burst: 10, daily: 2, calls: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rl := amazon.NewRateLimiter(tt.rate, tt.burst, tt.daily)

			var lastErr error
			for range tt.calls {
				lastErr = rl.Wait(context.Background())
				if lastErr != nil {
					break
				}
			}

			if tt.wantErr {
				require.ErrorIs(t, lastErr, amazon.ErrDailyLimitReached)
				return
			}
			require.NoError(t, lastErr)
		})
	}
}

func TestRateLimiter_QuotaAndReset(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	rl := amazon.NewRateLimiter(100, 10, 3, amazon.WithRateLimiterNowFunc(clock))
	for range 3 {
		require.NoError(t, rl.Wait(context.Background()))
	}

	q := rl.Quota()
	assert.Equal(t, int64(3), q.Used)
	assert.Equal(t, int64(0), q.Remaining)
	assert.Equal(t, now.Add(24*time.Hour), q.ResetAt)
	require.ErrorIs(t, rl.Wait(context.Background()), amazon.ErrDailyLimitReached)

	mu.Lock()
	now = now.Add(25 * time.Hour)
	mu.Unlock()

	require.NoError(t, rl.Wait(context.Background()))
	q = rl.Quota()
	assert.Equal(t, int64(1), q.Used)
	assert.Equal(t, int64(2), q.Remaining)
}

func TestRateLimiter_CanceledContextDoesNotConsumeQuota(t *testing.T) {
	t.Parallel()

	// Burst of one, so the second Wait has to block on the bucket.
	rl := amazon.NewRateLimiter(0.001, 1, 10)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, rl.Wait(ctx))

	assert.Equal(t, int64(1), rl.Quota().Used)
}

func TestLimiters_Quotas(t *testing.T) {
	t.Parallel()

	codes := []marketplace.Code{marketplace.US, marketplace.UK}
	l := amazon.NewLimiters(codes, amazon.RateLimitConfig{PerSecond: 10, Burst: 5, MaxDaily: 100})
	require.NoError(t, l[marketplace.UK].Wait(context.Background()))

	quotas := l.Quotas([]marketplace.Code{marketplace.US, marketplace.CA, marketplace.UK})
	require.Len(t, quotas, 2)
	assert.Equal(t, marketplace.US, quotas[0].Marketplace)
	assert.Equal(t, int64(0), quotas[0].Used)
	assert.Equal(t, marketplace.UK, quotas[1].Marketplace)
	assert.Equal(t, int64(1), quotas[1].Used)
	assert.Equal(t, int64(99), quotas[1].Remaining)
}

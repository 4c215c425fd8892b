package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/fanout"
	"github.com/jadehome/seller-console/internal/marketplace"
)

var allCodes = []marketplace.Code{marketplace.US, marketplace.CA, marketplace.UK, marketplace.AE, marketplace.SA}

func TestForEachMarketplace_Classification(t *testing.T) {
	t.Parallel()

	tokenErr := &amazon.TokenAcquisitionError{Marketplace: marketplace.AE, Scope: amazon.ScopeSP, StatusCode: 400}

	tests := []struct {
		name       string
		err        error
		downgrade  bool
		wantStatus fanout.Status
		wantData   bool
		wantToken  bool
		wantError  bool
	}{
		{name: "success", wantStatus: fanout.StatusSuccess, wantData: true},
		{name: "not listed keeps payload", err: fmt.Errorf("price: %w", amazon.ErrNotListed), wantStatus: fanout.StatusNotListed, wantData: true},
		{name: "token error", err: tokenErr, wantStatus: fanout.StatusError, wantToken: true, wantError: true},
		{name: "token error downgraded", err: tokenErr, downgrade: true, wantStatus: fanout.StatusNotListed, wantToken: true, wantError: true},
		{name: "timeout", err: &amazon.TimeoutError{Marketplace: marketplace.AE, Err: context.DeadlineExceeded}, wantStatus: fanout.StatusError, wantError: true},
		{name: "provider error not downgraded", err: &amazon.ProviderRequestError{StatusCode: 500}, downgrade: true, wantStatus: fanout.StatusError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []fanout.Option
			if tt.downgrade {
				opts = append(opts, fanout.DowngradeTokenErrors())
			}
			res := fanout.ForEachMarketplace(context.Background(), []marketplace.Code{marketplace.AE},
				func(context.Context, marketplace.Code) (amazon.Price, error) {
					return amazon.Price{CurrencyCode: "AED"}, tt.err
				}, opts...)

			require.Len(t, res, 1)
			got := res[marketplace.AE]
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantToken, got.TokenError)
			if tt.wantData {
				require.NotNil(t, got.Data)
				assert.Equal(t, "AED", got.Data.CurrencyCode)
			} else {
				assert.Nil(t, got.Data)
			}
			if tt.wantError {
				assert.NotEmpty(t, got.Error)
			} else {
				assert.Empty(t, got.Error)
			}
		})
	}
}

func TestForEachMarketplace_CompleteEvenWhenAllFail(t *testing.T) {
	t.Parallel()

	res := fanout.ForEachMarketplace(context.Background(), allCodes,
		func(_ context.Context, code marketplace.Code) (int, error) {
			return 0, fmt.Errorf("%s unavailable", code)
		}, fanout.WithOperationName("test_all_fail"))

	require.Len(t, res, len(allCodes))
	for _, code := range allCodes {
		assert.Equal(t, fanout.StatusError, res[code].Status, code)
		assert.Equal(t, string(code)+" unavailable", res[code].Error)
	}
	assert.Equal(t, len(allCodes), res.Count(fanout.StatusError))
}

func TestForEachMarketplace_Isolation(t *testing.T) {
	t.Parallel()

	api := func(_ context.Context, code marketplace.Code) ([]amazon.Campaign, error) {
		if code == marketplace.UK {
			return nil, &amazon.ProviderRequestError{Marketplace: code, StatusCode: 503, Message: "Service Unavailable"}
		}
		return []amazon.Campaign{{CampaignID: "c-" + string(code)}}, nil
	}

	res := fanout.ForEachMarketplace(context.Background(), []marketplace.Code{marketplace.US, marketplace.UK}, api)

	require.Len(t, res, 2)
	us := res[marketplace.US]
	assert.Equal(t, fanout.StatusSuccess, us.Status)
	require.NotNil(t, us.Data)
	assert.Equal(t, "c-US", (*us.Data)[0].CampaignID)

	uk := res[marketplace.UK]
	assert.Equal(t, fanout.StatusError, uk.Status)
	assert.Contains(t, uk.Error, "503")
}

func TestForEachMarketplace_PanicIsContained(t *testing.T) {
	t.Parallel()

	res := fanout.ForEachMarketplace(context.Background(), []marketplace.Code{marketplace.US, marketplace.CA},
		func(_ context.Context, code marketplace.Code) (string, error) {
			if code == marketplace.CA {
				panic("nil map write")
			}
			return "ok", nil
		}, fanout.WithOperationName("test_panic"))

	require.Len(t, res, 2)
	assert.Equal(t, fanout.StatusSuccess, res[marketplace.US].Status)
	assert.Equal(t, fanout.StatusError, res[marketplace.CA].Status)
	assert.Contains(t, res[marketplace.CA].Error, "nil map write")
}

func TestForEachMarketplace_DuplicatesCollapse(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	res := fanout.ForEachMarketplace(context.Background(),
		[]marketplace.Code{marketplace.US, marketplace.US, marketplace.SA, marketplace.US},
		func(context.Context, marketplace.Code) (bool, error) {
			calls.Add(1)
			return true, nil
		})

	assert.Len(t, res, 2)
	assert.Equal(t, int32(2), calls.Load())
}

func TestForEachMarketplace_EmptyInput(t *testing.T) {
	t.Parallel()

	res := fanout.ForEachMarketplace(context.Background(), nil,
		func(context.Context, marketplace.Code) (int, error) {
			t.Error("op must not run")
			return 0, nil
		})
	assert.Empty(t, res)
}

func TestForEachMarketplace_RunsConcurrently(t *testing.T) {
	t.Parallel()

	// Every op blocks until all have started; a sequential runner would
	// never release them.
	started := make(chan struct{}, len(allCodes))
	release := make(chan struct{})
	go func() {
		for range allCodes {
			<-started
		}
		close(release)
	}()

	res := fanout.ForEachMarketplace(context.Background(), allCodes,
		func(ctx context.Context, _ marketplace.Code) (int, error) {
			started <- struct{}{}
			select {
			case <-release:
				return 1, nil
			case <-time.After(5 * time.Second):
				return 0, errors.New("not released")
			}
		})

	assert.Equal(t, len(allCodes), res.Count(fanout.StatusSuccess))
}

func TestForEachMarketplace_WithConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	res := fanout.ForEachMarketplace(context.Background(), allCodes,
		func(context.Context, marketplace.Code) (int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			inFlight.Add(-1)
			return 0, nil
		}, fanout.WithConcurrency(2))

	assert.Len(t, res, len(allCodes))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

// Budget usage for US and UK where US returns spend and UK times out.
func TestForEachMarketplace_BudgetScenario(t *testing.T) {
	t.Parallel()

	type spend struct {
		Spend float64 `json:"spend"`
	}

	res := fanout.ForEachMarketplace(context.Background(), []marketplace.Code{marketplace.US, marketplace.UK},
		func(ctx context.Context, code marketplace.Code) (spend, error) {
			if code == marketplace.UK {
				ctx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
				defer cancel()
				<-ctx.Done()
				return spend{}, &amazon.TimeoutError{Marketplace: code, Operation: "campaign_budget_usage", Err: ctx.Err()}
			}
			return spend{Spend: 120}, nil
		}, fanout.WithOperationName("campaign_budget_usage"))

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "success", decoded["US"]["status"])
	assert.Equal(t, map[string]any{"spend": float64(120)}, decoded["US"]["data"])
	assert.Equal(t, "error", decoded["UK"]["status"])
	assert.Contains(t, decoded["UK"]["error"], "timed out")
	assert.NotContains(t, decoded["UK"], "data")
}

package amazon_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/marketplace"
)

const testSellerID = "A1SELLER"

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newRegistry builds a registry for codes with every endpoint pointed at
// baseURL.
func newRegistry(t *testing.T, baseURL string, codes ...marketplace.Code) *marketplace.Registry {
	t.Helper()

	if len(codes) == 0 {
		codes = []marketplace.Code{marketplace.US, marketplace.CA, marketplace.UK, marketplace.AE, marketplace.SA}
	}

	cfgs := make([]marketplace.Config, 0, len(codes))
	for _, code := range codes {
		cfg := marketplace.WithDefaults(marketplace.Config{
			Code:            code,
			SellerID:        testSellerID,
			RefreshToken:    "Atzr|sp-" + string(code),
			AdsRefreshToken: "Atzr|ads-" + string(code),
		})
		if baseURL != "" {
			cfg.Endpoint = baseURL
			cfg.AdsEndpoint = baseURL
		}
		cfgs = append(cfgs, cfg)
	}

	reg, err := marketplace.NewRegistry(cfgs...)
	require.NoError(t, err)
	return reg
}

package marketplace_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/marketplace"
)

func testRegistry(t *testing.T) *marketplace.Registry {
	t.Helper()

	reg, err := marketplace.NewRegistry(
		marketplace.WithDefaults(marketplace.Config{Code: "uk", SellerID: "S-EU"}),
		marketplace.WithDefaults(marketplace.Config{Code: marketplace.US, SellerID: "S-NA"}),
		marketplace.WithDefaults(marketplace.Config{Code: marketplace.SA, SellerID: "S-SA"}),
	)
	require.NoError(t, err)
	return reg
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)

	tests := []struct {
		name     string
		code     marketplace.Code
		wantErr  bool
		wantID   string
		wantCurr string
	}{
		{name: "US resolves", code: marketplace.US, wantID: "ATVPDKIKX0DER", wantCurr: "USD"},
		{name: "lower-case input normalized at construction", code: marketplace.UK, wantID: "A1F83G8C2ARO7P", wantCurr: "GBP"},
		{name: "supported but not configured", code: marketplace.CA, wantErr: true},
		{name: "unknown code", code: "DE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := reg.Resolve(tt.code)
			if tt.wantErr {
				var cfgErr *marketplace.ConfigurationError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, tt.code, cfgErr.Code)
				assert.ErrorIs(t, err, marketplace.ErrUnknownMarketplace)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, cfg.MarketplaceID)
			assert.Equal(t, tt.wantCurr, cfg.Currency)
		})
	}
}

func TestRegistry_CodesCanonicalOrder(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)
	assert.Equal(t, []marketplace.Code{marketplace.US, marketplace.UK, marketplace.SA}, reg.Codes())

	list := reg.List()
	require.Len(t, list, 3)
	assert.Equal(t, marketplace.Summary{ID: "US", Name: "United States", Currency: "USD"}, list[0])
}

func TestNewRegistry_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfgs    []marketplace.Config
		wantErr string
	}{
		{
			name:    "unsupported code",
			cfgs:    []marketplace.Config{{Code: "FR", MarketplaceID: "x", Endpoint: "https://x", Currency: "EUR"}},
			wantErr: "unsupported marketplace code",
		},
		{
			name: "duplicate code",
			cfgs: []marketplace.Config{
				marketplace.WithDefaults(marketplace.Config{Code: marketplace.US}),
				marketplace.WithDefaults(marketplace.Config{Code: marketplace.US}),
			},
			wantErr: "duplicate marketplace",
		},
		{
			name:    "missing endpoint",
			cfgs:    []marketplace.Config{{Code: marketplace.US, MarketplaceID: "ATVPDKIKX0DER", Currency: "USD"}},
			wantErr: "endpoint is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := marketplace.NewRegistry(tt.cfgs...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_ParseCodes(t *testing.T) {
	t.Parallel()

	reg := testRegistry(t)

	codes, err := reg.ParseCodes("")
	require.NoError(t, err)
	assert.Equal(t, reg.Codes(), codes)

	codes, err = reg.ParseCodes("uk, us,UK")
	require.NoError(t, err)
	assert.Equal(t, []marketplace.Code{marketplace.UK, marketplace.US}, codes)

	_, err = reg.ParseCodes("US,JP")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"JP"`)
}

package amazon_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadehome/seller-console/internal/amazon"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/tokencache"
)

var testCreds = amazon.ClientCredentials{ClientID: "amzn1.application-oa2-client.test", ClientSecret: "secret"}

// tokenJSON returns a valid LWA token response as JSON bytes.
func tokenJSON(token string, expiresIn int) []byte {
	return []byte(fmt.Sprintf(
		`{"access_token":%q,"refresh_token":"Atzr|rotated","token_type":"bearer","expires_in":%d}`,
		token, expiresIn,
	))
}

type lwaServer struct {
	*httptest.Server
	calls atomic.Int32
}

func newLWAServer(t *testing.T, handler http.HandlerFunc) *lwaServer {
	t.Helper()
	s := &lwaServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(s.Close)
	return s
}

func newTokenManager(
	t *testing.T,
	scope amazon.Scope,
	srv *lwaServer,
	cache tokencache.Cache,
	clk *clock,
) *amazon.TokenManager {
	t.Helper()
	return amazon.NewTokenManager(
		scope,
		newRegistry(t, ""),
		cache,
		testCreds,
		amazon.WithTokenURL(srv.URL),
		amazon.WithTokenNowFunc(clk.Now),
	)
}

func TestTokenManager_RefreshGrantForm(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "Atzr|sp-UK", r.PostForm.Get("refresh_token"))
		assert.Equal(t, testCreds.ClientID, r.PostForm.Get("client_id"))
		assert.Equal(t, testCreds.ClientSecret, r.PostForm.Get("client_secret"))
		assert.Empty(t, r.Header.Get("Authorization"), "credentials go in the body")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|uk", 3600))
	})

	clk := newClock()
	m := newTokenManager(t, amazon.ScopeSP, srv, tokencache.NewMemory(tokencache.WithMemoryNowFunc(clk.Now)), clk)

	tok, err := m.AccessToken(context.Background(), marketplace.UK)
	require.NoError(t, err)
	assert.Equal(t, "Atza|uk", tok)
	assert.Equal(t, int32(1), srv.calls.Load())
}

func TestTokenManager_CachesUntilExpiryMinusMargin(t *testing.T) {
	t.Parallel()

	var issued atomic.Int32
	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		n := issued.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON(fmt.Sprintf("Atza|%d", n), 3600))
	})

	clk := newClock()
	start := clk.Now()
	cache := tokencache.NewMemory(tokencache.WithMemoryNowFunc(clk.Now))
	m := newTokenManager(t, amazon.ScopeSP, srv, cache, clk)
	ctx := context.Background()

	tok, err := m.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)
	assert.Equal(t, "Atza|1", tok)

	raw, found, err := cache.Get(ctx, "sp:token:US")
	require.NoError(t, err)
	require.True(t, found)
	var stored amazon.CachedToken
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.True(t, start.Add(3540*time.Second).Equal(stored.ExpiresAt), "expires_at = issued + expires_in - 60s")
	assert.True(t, start.Equal(stored.IssuedAt))
	assert.Equal(t, marketplace.US, stored.Marketplace)

	// Still valid one second before ExpiresAt: no network call.
	clk.Advance(3539 * time.Second)
	tok, err = m.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)
	assert.Equal(t, "Atza|1", tok)
	assert.Equal(t, int32(1), srv.calls.Load())

	// At ExpiresAt the token is refreshed.
	clk.Advance(time.Second)
	tok, err = m.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)
	assert.Equal(t, "Atza|2", tok)
	assert.Equal(t, int32(2), srv.calls.Load())
}

func TestTokenManager_HitPerformsNoWrites(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|fresh", 3600))
	})

	clk := newClock()
	cache := &countingCache{Cache: tokencache.NewMemory(tokencache.WithMemoryNowFunc(clk.Now))}
	m := newTokenManager(t, amazon.ScopeSP, srv, cache, clk)
	ctx := context.Background()

	for range 5 {
		_, err := m.AccessToken(ctx, marketplace.CA)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), cache.sets.Load(), "exactly one write for the miss")
	assert.Equal(t, int32(1), srv.calls.Load())
}

func TestTokenManager_ScopesUseSeparateKeys(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("for-"+r.PostForm.Get("refresh_token"), 3600))
	})

	clk := newClock()
	cache := tokencache.NewMemory(tokencache.WithMemoryNowFunc(clk.Now))
	sp := newTokenManager(t, amazon.ScopeSP, srv, cache, clk)
	ads := newTokenManager(t, amazon.ScopeAds, srv, cache, clk)
	ctx := context.Background()

	spTok, err := sp.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)
	adsTok, err := ads.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)

	assert.Equal(t, "for-Atzr|sp-US", spTok)
	assert.Equal(t, "for-Atzr|ads-US", adsTok)
	assert.Equal(t, 2, cache.Len())
}

func TestTokenManager_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantCalls  int32
		wantStatus int
	}{
		{
			name:       "invalid grant is not retried",
			status:     http.StatusBadRequest,
			body:       `{"error":"invalid_grant","error_description":"The request has an invalid grant parameter"}`,
			wantCalls:  1,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unauthorized client is not retried",
			status:     http.StatusUnauthorized,
			body:       `{"error":"invalid_client"}`,
			wantCalls:  1,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "server error is retried once",
			status:     http.StatusInternalServerError,
			body:       `{"error":"server_error"}`,
			wantCalls:  2,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "throttling is retried once",
			status:     http.StatusTooManyRequests,
			body:       `{"error":"slow_down"}`,
			wantCalls:  2,
			wantStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			clk := newClock()
			cache := tokencache.NewMemory()
			m := newTokenManager(t, amazon.ScopeSP, srv, cache, clk)

			_, err := m.AccessToken(context.Background(), marketplace.AE)
			require.Error(t, err)

			var tokErr *amazon.TokenAcquisitionError
			require.ErrorAs(t, err, &tokErr)
			assert.Equal(t, marketplace.AE, tokErr.Marketplace)
			assert.Equal(t, tt.wantStatus, tokErr.StatusCode)
			assert.Contains(t, tokErr.Body, "error")
			assert.Equal(t, tt.wantCalls, srv.calls.Load())
			assert.Equal(t, 0, cache.Len(), "errors are never cached")
		})
	}
}

func TestTokenManager_RecoversAfterTransientFailure(t *testing.T) {
	t.Parallel()

	var n atomic.Int32
	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if n.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|second", 3600))
	})

	clk := newClock()
	m := newTokenManager(t, amazon.ScopeSP, srv, tokencache.NewMemory(), clk)

	tok, err := m.AccessToken(context.Background(), marketplace.SA)
	require.NoError(t, err)
	assert.Equal(t, "Atza|second", tok)
	assert.Equal(t, int32(2), srv.calls.Load())
}

func TestTokenManager_ConfigurationErrors(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("token endpoint must not be called")
	})

	noToken, err := marketplace.NewRegistry(marketplace.WithDefaults(marketplace.Config{Code: marketplace.US}))
	require.NoError(t, err)
	withToken := newRegistry(t, "", marketplace.US)

	tests := []struct {
		name  string
		reg   *marketplace.Registry
		creds amazon.ClientCredentials
		code  marketplace.Code
	}{
		{name: "unknown marketplace", reg: withToken, creds: testCreds, code: "DE"},
		{name: "missing refresh token", reg: noToken, creds: testCreds, code: marketplace.US},
		{name: "missing client credentials", reg: withToken, creds: amazon.ClientCredentials{}, code: marketplace.US},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := amazon.NewTokenManager(amazon.ScopeSP, tt.reg, tokencache.NewMemory(), tt.creds,
				amazon.WithTokenURL(srv.URL))

			_, err := m.AccessToken(context.Background(), tt.code)
			var cfgErr *marketplace.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.code, cfgErr.Code)
		})
	}
}

func TestTokenManager_Invalidate(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|x", 3600))
	})

	clk := newClock()
	m := newTokenManager(t, amazon.ScopeSP, srv, tokencache.NewMemory(), clk)
	ctx := context.Background()

	_, err := m.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)
	require.NoError(t, m.Invalidate(ctx, marketplace.US))
	_, err = m.AccessToken(ctx, marketplace.US)
	require.NoError(t, err)

	assert.Equal(t, int32(2), srv.calls.Load())
}

func TestTokenManager_CacheFailureFallsBackToExchange(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|x", 3600))
	})

	clk := newClock()
	m := newTokenManager(t, amazon.ScopeSP, srv, brokenCache{}, clk)

	tok, err := m.AccessToken(context.Background(), marketplace.US)
	require.NoError(t, err)
	assert.Equal(t, "Atza|x", tok)
}

func TestTokenManager_ShortLivedTokenNotCached(t *testing.T) {
	t.Parallel()

	srv := newLWAServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(tokenJSON("Atza|short", 30))
	})

	clk := newClock()
	cache := tokencache.NewMemory()
	m := newTokenManager(t, amazon.ScopeSP, srv, cache, clk)

	tok, err := m.AccessToken(context.Background(), marketplace.US)
	require.NoError(t, err)
	assert.Equal(t, "Atza|short", tok)
	assert.Equal(t, 0, cache.Len())
}

type countingCache struct {
	tokencache.Cache
	sets atomic.Int32
}

func (c *countingCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.sets.Add(1)
	return c.Cache.Set(ctx, key, value, ttl)
}

type brokenCache struct{}

var errCacheDown = errors.New("cache down")

func (brokenCache) Get(context.Context, string) (string, bool, error) { return "", false, errCacheDown }
func (brokenCache) Set(context.Context, string, string, time.Duration) error {
	return errCacheDown
}
func (brokenCache) Delete(context.Context, string) error { return errCacheDown }

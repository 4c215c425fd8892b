package amazon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
	"github.com/jadehome/seller-console/internal/tokencache"
)

const (
	// DefaultTokenURL is the Login with Amazon token endpoint.
	DefaultTokenURL = "https://api.amazon.com/auth/o2/token" //nolint:gosec // not a credential

	// refreshMargin is subtracted from expires_in so a token is never used
	// in its last minute.
	refreshMargin = 60 * time.Second

	// defaultExpiresIn applies when the token endpoint omits expires_in.
	defaultExpiresIn = time.Hour
)

// Scope selects which refresh token and key namespace a TokenManager uses.
type Scope string

// Token scopes.
const (
	ScopeSP  Scope = "sp"
	ScopeAds Scope = "ads"
)

// ClientCredentials identifies the LWA application.
type ClientCredentials struct {
	ClientID     string
	ClientSecret string
}

// TokenProvider hands out access tokens per marketplace.
type TokenProvider interface {
	AccessToken(ctx context.Context, code marketplace.Code) (string, error)
	Invalidate(ctx context.Context, code marketplace.Code) error
}

// CachedToken is the JSON value stored in the token cache.
type CachedToken struct {
	Marketplace  marketplace.Code `json:"marketplace"`
	AccessToken  string           `json:"access_token"`
	IssuedAt     time.Time        `json:"issued_at"`
	ExpiresAt    time.Time        `json:"expires_at"`
	RefreshToken string           `json:"refresh_token,omitempty"`
}

// TokenManager exchanges per-marketplace refresh tokens for access tokens
// and keeps them in a shared cache until shortly before expiry.
//
// Concurrent misses for the same marketplace may each perform an exchange;
// the last cache write wins. Both tokens are valid so no lock is held
// across the network call.
type TokenManager struct {
	scope    Scope
	registry *marketplace.Registry
	cache    tokencache.Cache
	creds    ClientCredentials
	tokenURL string
	client   *http.Client
	logger   *slog.Logger
	nowFunc  func() time.Time
}

// TokenOption configures the TokenManager.
type TokenOption func(*TokenManager)

// WithTokenURL overrides the default LWA token endpoint.
func WithTokenURL(u string) TokenOption {
	return func(m *TokenManager) {
		m.tokenURL = u
	}
}

// WithTokenHTTPClient overrides the HTTP client used for the exchange.
func WithTokenHTTPClient(c *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.client = c
	}
}

// WithTokenLogger sets the logger.
func WithTokenLogger(l *slog.Logger) TokenOption {
	return func(m *TokenManager) {
		m.logger = l
	}
}

// WithTokenNowFunc overrides the time function for testing.
func WithTokenNowFunc(f func() time.Time) TokenOption {
	return func(m *TokenManager) {
		m.nowFunc = f
	}
}

// NewTokenManager creates a TokenManager for scope.
func NewTokenManager(
	scope Scope,
	registry *marketplace.Registry,
	cache tokencache.Cache,
	creds ClientCredentials,
	opts ...TokenOption,
) *TokenManager {
	m := &TokenManager{
		scope:    scope,
		registry: registry,
		cache:    cache,
		creds:    creds,
		tokenURL: DefaultTokenURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   slog.Default(),
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scope returns the manager's scope.
func (m *TokenManager) Scope() Scope { return m.scope }

func (m *TokenManager) cacheKey(code marketplace.Code) string {
	return fmt.Sprintf("%s:token:%s", m.scope, code)
}

func (m *TokenManager) refreshToken(cfg marketplace.Config) string {
	if m.scope == ScopeAds {
		return cfg.AdsRefreshToken
	}
	return cfg.RefreshToken
}

// AccessToken returns a valid access token for code. A cached token is
// returned untouched while now < ExpiresAt; otherwise the refresh token is
// exchanged and the result cached for expires_in minus one minute.
func (m *TokenManager) AccessToken(ctx context.Context, code marketplace.Code) (string, error) {
	cfg, err := m.registry.Resolve(code)
	if err != nil {
		return "", err
	}
	refresh := m.refreshToken(cfg)
	if refresh == "" {
		return "", &marketplace.ConfigurationError{
			Code:   code,
			Reason: fmt.Sprintf("no %s refresh token configured", m.scope),
		}
	}
	if m.creds.ClientID == "" || m.creds.ClientSecret == "" {
		return "", &marketplace.ConfigurationError{
			Code:   code,
			Reason: fmt.Sprintf("no %s client credentials configured", m.scope),
		}
	}

	if tok, ok := m.cached(ctx, code); ok {
		metrics.TokenCacheHitsTotal.WithLabelValues(string(m.scope), string(code)).Inc()
		return tok.AccessToken, nil
	}

	tok, err := m.exchange(ctx, code, refresh)
	var tokErr *TokenAcquisitionError
	if errors.As(err, &tokErr) && tokErr.transient() && ctx.Err() == nil {
		m.logger.Warn("retrying token exchange",
			"scope", m.scope, "marketplace", code, "status", tokErr.StatusCode)
		tok, err = m.exchange(ctx, code, refresh)
	}
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues(string(m.scope), string(code), "error").Inc()
		return "", err
	}
	metrics.TokenRefreshesTotal.WithLabelValues(string(m.scope), string(code), "success").Inc()

	m.store(ctx, tok)
	return tok.AccessToken, nil
}

// Invalidate drops the cached token for code so the next AccessToken call
// performs a fresh exchange.
func (m *TokenManager) Invalidate(ctx context.Context, code marketplace.Code) error {
	metrics.TokenInvalidationsTotal.WithLabelValues(string(m.scope), string(code)).Inc()
	if err := m.cache.Delete(ctx, m.cacheKey(code)); err != nil {
		return fmt.Errorf("invalidating %s token for %s: %w", m.scope, code, err)
	}
	return nil
}

// cached returns the stored token if it is present and unexpired. Cache
// errors are logged and treated as a miss.
func (m *TokenManager) cached(ctx context.Context, code marketplace.Code) (CachedToken, bool) {
	raw, found, err := m.cache.Get(ctx, m.cacheKey(code))
	if err != nil {
		m.logger.Warn("token cache read failed", "scope", m.scope, "marketplace", code, "error", err)
		return CachedToken{}, false
	}
	if !found {
		return CachedToken{}, false
	}

	var tok CachedToken
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		m.logger.Warn("discarding undecodable cached token", "scope", m.scope, "marketplace", code, "error", err)
		return CachedToken{}, false
	}
	if tok.AccessToken == "" || !m.nowFunc().Before(tok.ExpiresAt) {
		return CachedToken{}, false
	}
	return tok, true
}

func (m *TokenManager) store(ctx context.Context, tok CachedToken) {
	ttl := tok.ExpiresAt.Sub(m.nowFunc())
	if ttl <= 0 {
		m.logger.Warn("token lifetime shorter than refresh margin, not caching",
			"scope", m.scope, "marketplace", tok.Marketplace)
		return
	}

	raw, err := json.Marshal(tok)
	if err != nil {
		m.logger.Error("encoding token for cache", "scope", m.scope, "marketplace", tok.Marketplace, "error", err)
		return
	}
	if err := m.cache.Set(ctx, m.cacheKey(tok.Marketplace), string(raw), ttl); err != nil {
		m.logger.Warn("token cache write failed", "scope", m.scope, "marketplace", tok.Marketplace, "error", err)
	}
}

// exchange performs one refresh_token grant against the LWA endpoint.
func (m *TokenManager) exchange(ctx context.Context, code marketplace.Code, refresh string) (CachedToken, error) {
	conf := &oauth2.Config{
		ClientID:     m.creds.ClientID,
		ClientSecret: m.creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  m.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	issuedAt := m.nowFunc()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.client)
	tok, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refresh}).Token()
	if err != nil {
		return CachedToken{}, m.tokenError(code, err)
	}

	m.logger.Debug("exchanged refresh token", "scope", m.scope, "marketplace", code)

	return CachedToken{
		Marketplace:  code,
		AccessToken:  tok.AccessToken,
		IssuedAt:     issuedAt,
		ExpiresAt:    issuedAt.Add(expiresIn(tok, issuedAt) - refreshMargin),
		RefreshToken: refresh,
	}, nil
}

func (m *TokenManager) tokenError(code marketplace.Code, err error) error {
	out := &TokenAcquisitionError{Marketplace: code, Scope: m.scope, Err: err}
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) {
		if rErr.Response != nil {
			out.StatusCode = rErr.Response.StatusCode
		}
		out.Body = string(rErr.Body)
	}
	return out
}

// expiresIn reads the raw expires_in field, falling back to the parsed
// expiry and then to one hour.
func expiresIn(tok *oauth2.Token, issuedAt time.Time) time.Duration {
	switch v := tok.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v) * time.Second
	case int64:
		return time.Duration(v) * time.Second
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	if tok.ExpiresIn > 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}
	if !tok.Expiry.IsZero() {
		return tok.Expiry.Sub(issuedAt)
	}
	return defaultExpiresIn
}

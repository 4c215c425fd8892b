// Package amazon is the access layer for Amazon's Selling Partner API and
// Advertising API across the configured marketplaces.
//
// Every call resolves a marketplace, obtains an access token from a
// TokenProvider, optionally SigV4-signs the request and normalizes failures
// into the typed errors in errors.go.
package amazon

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jadehome/seller-console/internal/amazon/sigv4"
	"github.com/jadehome/seller-console/internal/marketplace"
	"github.com/jadehome/seller-console/internal/metrics"
	"github.com/jadehome/seller-console/internal/tokencache"
)

const (
	// DefaultTimeout bounds every provider HTTP call.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "seller-console/1.0 (Language=Go)"
	tracerName       = "github.com/jadehome/seller-console/internal/amazon"
)

// API is the set of provider operations the console depends on.
type API interface {
	ListOrders(ctx context.Context, code marketplace.Code, q OrdersQuery) (*OrdersPage, error)
	GetCatalogItem(ctx context.Context, code marketplace.Code, asin string) (*CatalogItem, error)
	GetListing(ctx context.Context, code marketplace.Code, sku string) (*Listing, error)
	CheckListingStatus(ctx context.Context, code marketplace.Code, sku string) (ListingStatus, error)
	GetListingPrice(ctx context.Context, code marketplace.Code, sku string) (Price, error)
	SetListingPrice(ctx context.Context, code marketplace.Code, sku string, u PriceUpdate) (*ListingSubmission, error)
	PublishListing(ctx context.Context, code marketplace.Code, sku string, body ListingPut) (*ListingSubmission, error)
	PatchListing(ctx context.Context, code marketplace.Code, sku, productType string, patches []PatchOperation) (*ListingSubmission, error)
	ListCampaigns(ctx context.Context, code marketplace.Code) ([]Campaign, error)
	GetCampaignBudgetUsage(ctx context.Context, code marketplace.Code, campaignIDs []string) (*BudgetUsageResult, error)
	ListProfiles(ctx context.Context, code marketplace.Code) ([]Profile, error)
	ProfileID(ctx context.Context, code marketplace.Code) (string, error)
	Quotas() []Quota
}

// Client implements API over HTTP.
type Client struct {
	registry    *marketplace.Registry
	spTokens    TokenProvider
	adsTokens   TokenProvider
	adsClientID string
	awsCreds    aws.CredentialsProvider
	cache       tokencache.Cache
	httpClient  *http.Client
	limiters    Limiters
	timeout     time.Duration
	userAgent   string
	logger      *slog.Logger
	nowFunc     func() time.Time
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithAdsTokens sets the token provider and LWA client ID used for the
// Advertising API.
func WithAdsTokens(p TokenProvider, clientID string) ClientOption {
	return func(c *Client) {
		c.adsTokens = p
		c.adsClientID = clientID
	}
}

// WithAWSCredentials sets the credentials used to SigV4-sign SP-API calls.
func WithAWSCredentials(p aws.CredentialsProvider) ClientOption {
	return func(c *Client) {
		c.awsCreds = p
	}
}

// WithProfileCache sets the cache used for advertising profile IDs.
func WithProfileCache(cache tokencache.Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimiters installs per-marketplace rate limiters. Marketplaces without
// a limiter are not throttled.
func WithLimiters(l Limiters) ClientOption {
	return func(c *Client) {
		c.limiters = l
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithUserAgent overrides the User-Agent sent to SP-API.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) ClientOption {
	return func(c *Client) {
		c.nowFunc = f
	}
}

// NewClient creates a Client. spTokens supplies Selling Partner tokens.
func NewClient(registry *marketplace.Registry, spTokens TokenProvider, opts ...ClientOption) *Client {
	c := &Client{
		registry:   registry,
		spTokens:   spTokens,
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		userAgent:  defaultUserAgent,
		logger:     slog.Default(),
		nowFunc:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Quotas reports rate-limit usage per marketplace.
func (c *Client) Quotas() []Quota {
	return c.limiters.Quotas(c.registry.Codes())
}

type apiKind int

const (
	spAPI apiKind = iota
	adsAPI
)

// call describes one logical provider request.
type call struct {
	api       apiKind
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	// contentType also becomes the Accept header when set.
	contentType string
	sign        bool
	// idempotent calls are re-issued once after an auth failure.
	idempotent bool
	// profileID is sent as the Ads scope header when set.
	profileID string
}

// do runs cl for code and decodes a 2xx body into out (when non-nil).
func (c *Client) do(ctx context.Context, code marketplace.Code, cl call, out any) error {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return err
	}

	tokens := c.spTokens
	if cl.api == adsAPI {
		tokens = c.adsTokens
	}
	if tokens == nil {
		return &marketplace.ConfigurationError{Code: code, Reason: cl.operation + ": token provider not configured"}
	}

	var payload []byte
	if cl.body != nil {
		payload, err = json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", cl.operation, err)
		}
	}

	err = c.attempt(ctx, cfg, tokens, cl, payload, out)

	var provErr *ProviderRequestError
	if errors.As(err, &provErr) && provErr.authFailure() {
		if invErr := tokens.Invalidate(ctx, code); invErr != nil {
			c.logger.Warn("invalidating token after auth failure",
				"marketplace", code, "operation", cl.operation, "error", invErr)
		}
		if cl.idempotent {
			metrics.AmazonAPIRetriesTotal.WithLabelValues(string(code), cl.operation).Inc()
			c.logger.Info("retrying after auth failure",
				"marketplace", code, "operation", cl.operation, "status", provErr.StatusCode)
			err = c.attempt(ctx, cfg, tokens, cl, payload, out)
		}
	}
	return err
}

func (c *Client) attempt(
	ctx context.Context,
	cfg marketplace.Config,
	tokens TokenProvider,
	cl call,
	payload []byte,
	out any,
) (err error) {
	code := cfg.Code

	ctx, span := otel.Tracer(tracerName).Start(ctx, "amazon."+cl.operation)
	span.SetAttributes(
		attribute.String("marketplace", string(code)),
		attribute.String("http.method", cl.method),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if l, ok := c.limiters[code]; ok {
		if err := l.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.AmazonDailyLimitHits.WithLabelValues(string(code)).Inc()
			}
			return fmt.Errorf("rate limit: %w", err)
		}
		metrics.AmazonDailyUsage.WithLabelValues(string(code)).Set(float64(l.Quota().Used))
	}

	token, err := tokens.AccessToken(ctx, code)
	if err != nil {
		return fmt.Errorf("getting access token: %w", err)
	}

	req, err := c.newRequest(ctx, cfg, cl, payload, token)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.AmazonAPIDuration.WithLabelValues(string(code), cl.operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AmazonAPICallsTotal.WithLabelValues(string(code), cl.operation, "error").Inc()
		if isTimeout(err) {
			return &TimeoutError{Marketplace: code, Operation: cl.operation, Err: err}
		}
		return fmt.Errorf("executing %s request: %w", cl.operation, err)
	}
	defer resp.Body.Close()

	metrics.AmazonAPICallsTotal.WithLabelValues(string(code), cl.operation, strconv.Itoa(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{Marketplace: code, Operation: cl.operation, Err: err}
		}
		return fmt.Errorf("reading %s response: %w", cl.operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeProviderError(code, cl.operation, resp.StatusCode, body)
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", cl.operation, err)
	}
	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	cfg marketplace.Config,
	cl call,
	payload []byte,
	token string,
) (*http.Request, error) {
	base := cfg.Endpoint
	if cl.api == adsAPI {
		base = cfg.AdsEndpoint
	}
	if base == "" {
		return nil, &marketplace.ConfigurationError{Code: cfg.Code, Reason: cl.operation + ": endpoint not configured"}
	}

	target := base + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", cl.operation, err)
	}

	contentType := cl.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	req.Header.Set("Accept", contentType)
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	switch cl.api {
	case spAPI:
		req.Header.Set("x-amz-access-token", token)
		req.Header.Set("User-Agent", c.userAgent)
	case adsAPI:
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Amazon-Advertising-API-ClientId", c.adsClientID)
		if cl.profileID != "" {
			req.Header.Set("Amazon-Advertising-API-Scope", cl.profileID)
		}
	}

	if cl.sign {
		if err := c.sign(ctx, cfg, req, payload); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (c *Client) sign(ctx context.Context, cfg marketplace.Config, req *http.Request, payload []byte) error {
	if c.awsCreds == nil {
		return &marketplace.ConfigurationError{Code: cfg.Code, Reason: "aws credentials not configured for request signing"}
	}
	creds, err := c.awsCreds.Retrieve(ctx)
	if err != nil {
		return fmt.Errorf("retrieving aws credentials: %w", err)
	}

	region := cfg.AWSRegion
	if region == "" {
		region = sigv4.DefaultRegion
	}
	if err := sigv4.SignHTTP(req, payload, creds, region, sigv4.ServiceExecuteAPI, c.nowFunc()); err != nil {
		return fmt.Errorf("signing request: %w", err)
	}
	return nil
}

// providerErrorBody covers both the SP-API and Ads API error shapes.
type providerErrorBody struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details string `json:"details"`
	} `json:"errors"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
}

func decodeProviderError(code marketplace.Code, operation string, status int, body []byte) error {
	perr := &ProviderRequestError{
		Marketplace: code,
		Operation:   operation,
		StatusCode:  status,
		Body:        string(body),
	}

	var parsed providerErrorBody
	if json.Unmarshal(body, &parsed) == nil {
		switch {
		case len(parsed.Errors) > 0:
			perr.Code = parsed.Errors[0].Code
			perr.Message = parsed.Errors[0].Message
			if perr.Message == "" {
				perr.Message = parsed.Errors[0].Details
			}
		case parsed.Code != "":
			perr.Code = parsed.Code
			perr.Message = parsed.Message
			if perr.Message == "" {
				perr.Message = parsed.Details
			}
		}
	}
	if perr.Message == "" && perr.Code == "" {
		perr.Message = http.StatusText(status)
	}
	return perr
}

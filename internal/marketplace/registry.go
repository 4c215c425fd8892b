// Package marketplace holds the static per-country Amazon marketplace
// configuration: endpoints, identifiers, currency and credentials.
package marketplace

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Code identifies one Amazon country-level marketplace.
type Code string

// Supported marketplace codes.
const (
	US Code = "US"
	CA Code = "CA"
	UK Code = "UK"
	AE Code = "AE"
	SA Code = "SA"
)

// canonicalOrder is the display and iteration order for marketplaces.
var canonicalOrder = []Code{US, CA, UK, AE, SA}

// ParseCode normalizes s (case-insensitive) into a Code. It does not check
// whether the code is configured; use Registry.Resolve for that.
func ParseCode(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// Config is the immutable configuration for a single marketplace.
type Config struct {
	Code          Code
	Name          string
	MarketplaceID string
	SellerID      string
	Currency      string

	// Endpoint is the Selling Partner API regional base URL.
	Endpoint string
	// AWSRegion is the SigV4 signing region for Endpoint.
	AWSRegion string

	// AdsEndpoint is the Advertising API regional base URL.
	AdsEndpoint string
	// AdsProfileID pins the advertising profile. When empty the profile is
	// looked up from the Advertising API and cached.
	AdsProfileID string

	RefreshToken    string
	AdsRefreshToken string
}

// Summary is the display-only view of a marketplace.
type Summary struct {
	ID       Code   `json:"id"       example:"US"`
	Name     string `json:"name"     example:"United States"`
	Currency string `json:"currency" example:"USD"`
}

// Registry resolves marketplace codes to their configuration. It is
// read-only after construction and safe for concurrent use.
type Registry struct {
	byCode map[Code]Config
	codes  []Code
}

// NewRegistry builds a Registry from cfgs. Codes must be unique and belong to
// the supported set.
func NewRegistry(cfgs ...Config) (*Registry, error) {
	r := &Registry{byCode: make(map[Code]Config, len(cfgs))}

	for i := range cfgs {
		c := cfgs[i]
		c.Code = ParseCode(string(c.Code))
		if !slices.Contains(canonicalOrder, c.Code) {
			return nil, &ConfigurationError{Code: c.Code, Reason: "unsupported marketplace code"}
		}
		if _, dup := r.byCode[c.Code]; dup {
			return nil, &ConfigurationError{Code: c.Code, Reason: "duplicate marketplace"}
		}
		if c.MarketplaceID == "" {
			return nil, &ConfigurationError{Code: c.Code, Reason: "marketplace_id is required"}
		}
		if c.Endpoint == "" {
			return nil, &ConfigurationError{Code: c.Code, Reason: "endpoint is required"}
		}
		if c.Currency == "" {
			return nil, &ConfigurationError{Code: c.Code, Reason: "currency is required"}
		}
		r.byCode[c.Code] = c
	}

	for _, code := range canonicalOrder {
		if _, ok := r.byCode[code]; ok {
			r.codes = append(r.codes, code)
		}
	}

	return r, nil
}

// Resolve returns the configuration for code.
func (r *Registry) Resolve(code Code) (Config, error) {
	c, ok := r.byCode[code]
	if !ok {
		return Config{}, &ConfigurationError{Code: code, Reason: "unknown marketplace", Err: ErrUnknownMarketplace}
	}
	return c, nil
}

// Codes returns all configured codes in canonical order.
func (r *Registry) Codes() []Code {
	return slices.Clone(r.codes)
}

// List returns display summaries for all configured marketplaces.
func (r *Registry) List() []Summary {
	out := make([]Summary, 0, len(r.codes))
	for _, code := range r.codes {
		c := r.byCode[code]
		out = append(out, Summary{ID: c.Code, Name: c.Name, Currency: c.Currency})
	}
	return out
}

// ParseCodes parses a comma-separated list of codes. An empty input yields
// every configured code. Unknown codes fail with ConfigurationError.
func (r *Registry) ParseCodes(csv string) ([]Code, error) {
	if strings.TrimSpace(csv) == "" {
		return r.Codes(), nil
	}

	var out []Code
	for _, part := range strings.Split(csv, ",") {
		code := ParseCode(part)
		if code == "" {
			continue
		}
		if _, err := r.Resolve(code); err != nil {
			return nil, err
		}
		if !slices.Contains(out, code) {
			out = append(out, code)
		}
	}
	return out, nil
}

// ErrUnknownMarketplace is wrapped by the ConfigurationError Resolve returns
// for a code that is not configured. It is the caller's mistake; every other
// ConfigurationError is a server misconfiguration.
var ErrUnknownMarketplace = errors.New("unknown marketplace")

// ConfigurationError reports an unknown marketplace or a missing credential.
// It is never retried.
type ConfigurationError struct {
	Code   Code
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: marketplace %q: %s", e.Code, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

package amazon

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/jadehome/seller-console/internal/marketplace"
)

// ProfileTTL is how long a looked-up advertising profile ID is cached.
const ProfileTTL = 20 * time.Hour

// CachedProfile is the JSON value stored for a resolved profile.
type CachedProfile struct {
	Marketplace marketplace.Code `json:"marketplace"`
	ProfileID   string           `json:"profile_id"`
	CachedAt    time.Time        `json:"cached_at"`
}

func profileKey(code marketplace.Code) string {
	return "ads:profile:" + string(code)
}

// ListProfiles returns the advertising profiles visible to code's ads
// refresh token.
func (c *Client) ListProfiles(ctx context.Context, code marketplace.Code) ([]Profile, error) {
	var profiles []Profile
	err := c.do(ctx, code, call{
		api:        adsAPI,
		operation:  "list_profiles",
		method:     http.MethodGet,
		path:       "/v2/profiles",
		idempotent: true,
	}, &profiles)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// ProfileID returns the advertising profile for code: the configured one
// if set, else a cached lookup, else the profile matching the marketplace
// ID or country code from ListProfiles.
func (c *Client) ProfileID(ctx context.Context, code marketplace.Code) (string, error) {
	cfg, err := c.registry.Resolve(code)
	if err != nil {
		return "", err
	}
	if cfg.AdsProfileID != "" {
		return cfg.AdsProfileID, nil
	}

	if id, ok := c.cachedProfile(ctx, code); ok {
		return id, nil
	}

	profiles, err := c.ListProfiles(ctx, code)
	if err != nil {
		return "", fmt.Errorf("resolving advertising profile: %w", err)
	}
	id := matchProfile(profiles, cfg)
	if id == "" {
		return "", &marketplace.ConfigurationError{Code: code, Reason: "no advertising profile found for marketplace"}
	}

	c.storeProfile(ctx, code, id)
	return id, nil
}

func matchProfile(profiles []Profile, cfg marketplace.Config) string {
	for _, p := range profiles {
		if p.AccountInfo.MarketplaceStringID == cfg.MarketplaceID {
			return strconv.FormatInt(p.ProfileID, 10)
		}
	}
	// The Ads API reports the United Kingdom as either UK or GB.
	for _, p := range profiles {
		cc := strings.ToUpper(p.CountryCode)
		if cc == string(cfg.Code) || (cfg.Code == marketplace.UK && cc == "GB") {
			return strconv.FormatInt(p.ProfileID, 10)
		}
	}
	return ""
}

func (c *Client) cachedProfile(ctx context.Context, code marketplace.Code) (string, bool) {
	if c.cache == nil {
		return "", false
	}
	raw, found, err := c.cache.Get(ctx, profileKey(code))
	if err != nil {
		c.logger.Warn("profile cache read failed", "marketplace", code, "error", err)
		return "", false
	}
	if !found {
		return "", false
	}
	var p CachedProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.ProfileID == "" {
		return "", false
	}
	// Backends without server-side expiry still must not serve stale entries.
	if c.nowFunc().Sub(p.CachedAt) >= ProfileTTL {
		return "", false
	}
	return p.ProfileID, true
}

func (c *Client) storeProfile(ctx context.Context, code marketplace.Code, id string) {
	if c.cache == nil {
		return
	}
	raw, err := json.Marshal(CachedProfile{Marketplace: code, ProfileID: id, CachedAt: c.nowFunc()})
	if err != nil {
		c.logger.Error("encoding profile for cache", "marketplace", code, "error", err)
		return
	}
	if err := c.cache.Set(ctx, profileKey(code), string(raw), ProfileTTL); err != nil {
		c.logger.Warn("profile cache write failed", "marketplace", code, "error", err)
	}
}

// Package tokencache defines the shared key-value store that holds OAuth
// access tokens and advertising profile IDs, with TTL-based expiry.
//
// Backends: an in-process map (tests, single-instance deployments), Redis,
// and DynamoDB. All keys are namespaced under a fixed prefix.
package tokencache

import (
	"context"
	"errors"
	"time"
)

// DefaultPrefix namespaces every key written by the console.
const DefaultPrefix = "amazon:"

// ErrInvalidTTL is returned by Set when ttl is not positive.
var ErrInvalidTTL = errors.New("ttl must be positive")

// Cache is a string key-value store with per-key expiry.
//
// Get returns found=false (and a nil error) for a missing or expired key.
// Implementations must be safe for concurrent use; no cross-key atomicity
// is required.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Prefixed wraps c so that every key is stored as prefix+key.
func Prefixed(c Cache, prefix string) Cache {
	if prefix == "" {
		return c
	}
	return &prefixed{inner: c, prefix: prefix}
}

type prefixed struct {
	inner  Cache
	prefix string
}

func (p *prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return p.inner.Set(ctx, p.prefix+key, value, ttl)
}

func (p *prefixed) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}

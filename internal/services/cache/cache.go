package cache

import (
	"context"
	"encoding/json"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Clock supplies the current time to stores that track expiry.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Store is a byte-oriented key/value backend with its own expiry policy.
// Get must report a miss for absent and expired keys alike.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}

// ResponseCache stores resolved responses under deterministic keys.
// Lookups fail soft: decode or backend problems are reported as a miss.
type ResponseCache struct {
	store Store
}

// New wraps a store.
func New(store Store) *ResponseCache {
	return &ResponseCache{store: store}
}

// NewMemory builds an in-process cache with the given TTL and clock.
func NewMemory(ttl time.Duration, clock Clock) *ResponseCache {
	return New(NewMemoryStore(ttl, clock))
}

// Get decodes the cached value for key into dest.
func (c *ResponseCache) Get(ctx context.Context, key string, dest any) bool {
	raw, ok := c.store.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		fiberlog.Warnf("ResponseCache: dropping undecodable entry: %v", err)
		return false
	}
	return true
}

// Set stores value under key, replacing any previous entry.
func (c *ResponseCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, key, raw)
}

// Clear drops every entry.
func (c *ResponseCache) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// Ping checks the backend is reachable.
func (c *ResponseCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Lookup is a typed Get.
func Lookup[T any](ctx context.Context, c *ResponseCache, key string) (T, bool) {
	var value T
	if !c.Get(ctx, key, &value) {
		var zero T
		return zero, false
	}
	return value, true
}

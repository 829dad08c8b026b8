package clientcache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache holds SDK clients keyed by their configuration so each distinct
// provider setup builds its client once.
type Cache[T any] struct {
	cache   sync.Map
	sfGroup singleflight.Group
}

// NewCache creates a new type-safe client cache
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// GetOrCreate retrieves a cached client or creates a new one using the provided factory function
// The factory is only called once per key, even under concurrent load
func (c *Cache[T]) GetOrCreate(key string, factory func() (T, error)) (T, error) {
	if cached, ok := c.cache.Load(key); ok {
		return cached.(T), nil
	}

	v, err, _ := c.sfGroup.Do(key, func() (any, error) {
		if cached, ok := c.cache.Load(key); ok {
			return cached.(T), nil
		}

		client, err := factory()
		if err != nil {
			var zero T
			return zero, err
		}

		c.cache.Store(key, client)

		return client, nil
	})

	if err != nil {
		var zero T
		return zero, err
	}

	return v.(T), nil
}

// ConfigKey derives a cache key from client settings without keeping the
// secret itself in memory as a map key.
func ConfigKey(baseURL, secret string, headers map[string]string) string {
	type configForHash struct {
		BaseURL    string
		Headers    map[string]string
		SecretHash string
	}

	secretHash := sha256.Sum256([]byte(secret))
	raw, _ := json.Marshal(configForHash{
		BaseURL:    baseURL,
		Headers:    headers,
		SecretHash: fmt.Sprintf("%x", secretHash[:8]),
	})

	hash := sha256.Sum256(raw)
	return fmt.Sprintf("%x", hash[:16])
}

package models

// CacheBackendType represents the type of cache backend to use
type CacheBackendType string

const (
	CacheBackendRedis  CacheBackendType = "redis"
	CacheBackendMemory CacheBackendType = "memory"
)

// DefaultCacheTTLSeconds is how long a resolved response stays visible.
const DefaultCacheTTLSeconds = 3600

// CacheConfig selects and tunes the response cache.
type CacheConfig struct {
	Backend    CacheBackendType `json:"backend,omitzero" yaml:"backend"`         // "memory" (default) or "redis"
	RedisURL   string           `json:"redis_url,omitzero" yaml:"redis_url"`     // Required if backend is "redis"
	KeyPrefix  string           `json:"key_prefix,omitzero" yaml:"key_prefix"`   // Redis key namespace
	TTLSeconds int              `json:"ttl_seconds,omitzero" yaml:"ttl_seconds"` // Defaults to one hour
}

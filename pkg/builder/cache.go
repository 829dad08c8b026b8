package builder

import (
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

func (b *Builder) WithMemoryCache(ttl time.Duration) *Builder {
	b.cfg.Cache = models.CacheConfig{
		Backend:    models.CacheBackendMemory,
		TTLSeconds: int(ttl.Seconds()),
	}
	return b
}

func (b *Builder) WithRedisCache(redisURL, keyPrefix string, ttl time.Duration) *Builder {
	b.cfg.Cache = models.CacheConfig{
		Backend:    models.CacheBackendRedis,
		RedisURL:   redisURL,
		KeyPrefix:  keyPrefix,
		TTLSeconds: int(ttl.Seconds()),
	}
	return b
}

func (b *Builder) WithTranslation(baseURL, apiKey string) *Builder {
	b.cfg.Translation.BaseURL = baseURL
	b.cfg.Translation.APIKey = models.NewCredential(apiKey)
	return b
}

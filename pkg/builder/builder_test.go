package builder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAppliesDefaults(t *testing.T) {
	cfg := New().Build()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowedOrigins)
	assert.Equal(t, models.DefaultCandidates, cfg.Models.Candidates)
	assert.Equal(t, models.DefaultMaxCandidates, cfg.Models.MaxCandidates)
	assert.Equal(t, models.CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Zero(t, cfg.MemoTTL())
	assert.Nil(t, cfg.Database)
	require.NoError(t, cfg.Validate())
}

func TestProvidersAndModels(t *testing.T) {
	cfg := New().
		WithGemini(NewProviderBuilder("g-key").WithTimeout(1500).WithHeader("X-Team", "hiring").Build()).
		WithAnthropic(NewProviderBuilder("").Build()).
		WithCandidates("anthropic:claude-3-haiku", "gemini:gemini-2.0-flash").
		WithMaxCandidates(1).
		WithModelMemo(2 * time.Minute).
		Build()

	assert.True(t, cfg.Providers.Gemini.APIKey.IsSet())
	assert.Equal(t, "g-key", cfg.Providers.Gemini.APIKey.Value())
	assert.Equal(t, "hiring", cfg.Providers.Gemini.Headers["X-Team"])
	assert.Equal(t, 1500*time.Millisecond, cfg.ProviderTimeout(models.ProviderGemini))
	assert.False(t, cfg.Providers.Anthropic.APIKey.IsSet())

	assert.Equal(t, []string{"anthropic:claude-3-haiku", "gemini:gemini-2.0-flash"}, cfg.Models.Candidates)
	assert.Equal(t, 1, cfg.Models.MaxCandidates)
	assert.Equal(t, 2*time.Minute, cfg.MemoTTL())
}

func TestCacheAndTranslation(t *testing.T) {
	cfg := New().
		WithRedisCache("redis://localhost:6379/0", "cl:", 10*time.Minute).
		WithTranslation("http://deeplx.local/translate", "").
		Build()

	assert.Equal(t, models.CacheBackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "cl:", cfg.Cache.KeyPrefix)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL())
	assert.Equal(t, "http://deeplx.local/translate", cfg.Translation.BaseURL)
	assert.False(t, cfg.Translation.APIKey.IsSet())

	cfg = New().WithRedisCache("", "", 0).Build()
	require.Error(t, cfg.Validate())
}

func TestMiddlewareOverrides(t *testing.T) {
	keyFn := func(c *fiber.Ctx) string { return "k" }
	b := New().
		WithRateLimit(5, time.Second, keyFn).
		WithTimeout(3 * time.Second).
		WithMiddleware(func(c *fiber.Ctx) error { return c.Next() })

	require.NotNil(t, b.GetRateLimitConfig())
	assert.Equal(t, 5, b.GetRateLimitConfig().Max)
	assert.Equal(t, time.Second, b.GetRateLimitConfig().Expiration)
	assert.NotNil(t, b.GetRateLimitConfig().KeyFunc)
	require.NotNil(t, b.GetTimeoutConfig())
	assert.Equal(t, 3*time.Second, b.GetTimeoutConfig().Timeout)
	assert.Len(t, b.GetMiddlewares(), 1)
}

func TestFromYAML(t *testing.T) {
	t.Setenv("COVER_LETTER_TEST_GEMINI_KEY", "from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
  allowed_origins: "http://localhost:3000"
providers:
  gemini:
    api_key: "${COVER_LETTER_TEST_GEMINI_KEY}"
models:
  candidates: ["gemini:gemini-2.0-flash"]
`), 0o600))

	b, err := FromYAML(path, nil)
	require.NoError(t, err)

	cfg := b.AdminToken("t0ken").Build()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Providers.Gemini.APIKey.Value())
	assert.Equal(t, []string{"gemini:gemini-2.0-flash"}, cfg.Models.Candidates)
	assert.Equal(t, "t0ken", cfg.Server.AdminToken)
	assert.Empty(t, b.GetMiddlewares())
}

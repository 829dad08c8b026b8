package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: "${TEST_COVER_PORT:-9090}"
  allowed_origins: "http://localhost:3000"
  log_level: DEBUG
providers:
  gemini:
    api_key: "${TEST_COVER_GEMINI_KEY}"
    timeout_ms: 1500
models:
  candidates: ["gemini:gemini-2.0-flash", "openai:gpt-4o-mini"]
  max_candidates: 2
cache:
  ttl_seconds: 120
`

func TestParseSubstitutesEnvironment(t *testing.T) {
	t.Setenv("TEST_COVER_GEMINI_KEY", "secret-key")

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.GetNormalizedLogLevel())
	assert.True(t, cfg.Providers.Gemini.APIKey.IsSet())
	assert.Equal(t, "secret-key", cfg.Providers.Gemini.APIKey.Value())
	assert.False(t, cfg.Providers.OpenAI.APIKey.IsSet())
	assert.Equal(t, []string{"gemini:gemini-2.0-flash", "openai:gpt-4o-mini"}, cfg.Models.Candidates)
	assert.Equal(t, 2, cfg.Models.MaxCandidates)
	assert.Equal(t, 1500*time.Millisecond, cfg.ProviderTimeout(models.ProviderGemini))
	assert.Equal(t, 20*time.Second, cfg.ProviderTimeout(models.ProviderOpenAI))
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL())
}

func TestParseUnsetCredentialStaysUnset(t *testing.T) {
	require.NoError(t, os.Unsetenv("TEST_COVER_GEMINI_KEY"))

	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.False(t, cfg.Providers.Gemini.APIKey.IsSet())
	assert.Equal(t, "<unset>", cfg.Providers.Gemini.APIKey.String())
}

func TestApplyDefaults(t *testing.T) {
	cfg, err := Parse([]byte("server:\n  allowed_origins: \"*\"\n"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, models.DefaultCandidates, cfg.Models.Candidates)
	assert.Equal(t, models.DefaultMaxCandidates, cfg.Models.MaxCandidates)
	assert.Equal(t, "test", cfg.Models.ProbePrompt)
	assert.Equal(t, models.CacheBackendMemory, cfg.Cache.Backend)
	assert.Equal(t, time.Hour, cfg.CacheTTL())
	assert.Zero(t, cfg.MemoTTL())
	assert.Nil(t, cfg.Database)
	assert.NoError(t, cfg.Validate())
}

func TestValidateReportsMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("cache:\n  backend: redis\n"))
	require.NoError(t, err)

	err = cfg.Validate()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"server.allowed_origins", "cache.redis_url"}, validationErr.MissingFields)
}

func TestLoadFromFileRejectsBadPaths(t *testing.T) {
	_, err := LoadFromFile("../config.yaml")
	assert.Error(t, err)

	_, err = LoadFromFile("config.json")
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.Server.AllowedOrigins)
}

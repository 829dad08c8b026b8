package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"

	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort             = "8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultProviderTimeout  = 20 * time.Second
	defaultTranslateTimeout = 10 * time.Second
	defaultRateLimitRpm     = 60
	defaultCacheKeyPrefix   = "cover-letter:"
)

// envPattern matches ${VAR_NAME} or ${VAR_NAME:-default_value}
var envPattern = regexp.MustCompile(`\$\{([^}:]+)(?::(-[^}]*))?\}`)

// Config represents the complete application configuration
type Config struct {
	Server      models.ServerConfig      `yaml:"server"`
	Providers   models.ProvidersConfig   `yaml:"providers"`
	Models      models.ModelsConfig      `yaml:"models"`
	Cache       models.CacheConfig       `yaml:"cache"`
	Translation models.TranslationConfig `yaml:"translation"`
	Database    *models.DatabaseConfig   `yaml:"database,omitempty"`
}

// LoadFromFile loads configuration from a YAML file with environment variable substitution
func LoadFromFile(configPath string) (*Config, error) {
	cleanPath := filepath.Clean(configPath)

	if strings.Contains(cleanPath, "..") {
		return nil, fmt.Errorf("invalid config path: path traversal not allowed")
	}

	ext := filepath.Ext(cleanPath)
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("invalid config file: only .yaml and .yml files are allowed")
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 - path is validated above
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cleanPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration after substituting environment variables
// and fills in defaults for everything left blank.
func Parse(data []byte) (*Config, error) {
	content := substituteEnvVars(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// LoadEnvFiles loads environment variables from .env files in order of precedence
// Loads files in the order provided (first has highest priority)
func LoadEnvFiles(envFiles []string) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err == nil {
			fmt.Printf("Loaded environment variables from %s\n", envFile)
		}
	}
}

// New creates a new Config instance by loading from the specified config file path
func New(configPath string) (*Config, error) {
	return LoadFromFile(configPath)
}

// substituteEnvVars replaces ${VAR_NAME} and ${VAR_NAME:-default} patterns with environment variables
func substituteEnvVars(content string) string {
	return envPattern.ReplaceAllStringFunc(content, func(match string) string {
		submatches := envPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		defaultValue := ""
		if len(submatches) > 2 && submatches[2] != "" {
			defaultValue = strings.TrimPrefix(submatches[2], "-")
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return defaultValue
	})
}

// ApplyDefaults fills zero values with the service defaults.
func (c *Config) ApplyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}
	if c.Server.RateLimitRpm <= 0 {
		c.Server.RateLimitRpm = defaultRateLimitRpm
	}
	if len(c.Models.Candidates) == 0 {
		c.Models.Candidates = append([]string(nil), models.DefaultCandidates...)
	}
	if c.Models.MaxCandidates <= 0 {
		c.Models.MaxCandidates = models.DefaultMaxCandidates
	}
	if c.Models.ProbePrompt == "" {
		c.Models.ProbePrompt = models.DefaultProbePrompt
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = models.CacheBackendMemory
	}
	if c.Cache.TTLSeconds <= 0 {
		c.Cache.TTLSeconds = models.DefaultCacheTTLSeconds
	}
	if c.Cache.KeyPrefix == "" {
		c.Cache.KeyPrefix = defaultCacheKeyPrefix
	}
	if c.Database != nil && !c.Database.Enabled() {
		c.Database = nil
	}
}

// GetNormalizedLogLevel returns the log level in lowercase for consistent comparison
func (c *Config) GetNormalizedLogLevel() string {
	return strings.ToLower(c.Server.LogLevel)
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// CacheTTL is the response cache lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// RequestTimeout bounds an entire inbound request.
func (c *Config) RequestTimeout() time.Duration {
	if c.Server.RequestTimeoutMs > 0 {
		return time.Duration(c.Server.RequestTimeoutMs) * time.Millisecond
	}
	return defaultRequestTimeout
}

// ProviderTimeout bounds a single provider call.
func (c *Config) ProviderTimeout(provider string) time.Duration {
	if pc, ok := c.Providers.Get(provider); ok && pc.TimeoutMs > 0 {
		return time.Duration(pc.TimeoutMs) * time.Millisecond
	}
	return defaultProviderTimeout
}

// TranslationTimeout bounds a single translation call.
func (c *Config) TranslationTimeout() time.Duration {
	if c.Translation.TimeoutMs > 0 {
		return time.Duration(c.Translation.TimeoutMs) * time.Millisecond
	}
	return defaultTranslateTimeout
}

// MemoTTL is how long the last working candidate is preferred; zero disables it.
func (c *Config) MemoTTL() time.Duration {
	return time.Duration(c.Models.MemoTTLMs) * time.Millisecond
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port == "" {
		missing = append(missing, "server.port")
	}
	if c.Server.AllowedOrigins == "" {
		missing = append(missing, "server.allowed_origins")
	}
	if len(c.Models.Candidates) == 0 {
		missing = append(missing, "models.candidates")
	}
	if c.Cache.Backend == models.CacheBackendRedis && c.Cache.RedisURL == "" {
		missing = append(missing, "cache.redis_url")
	}

	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}

	if !c.Providers.Gemini.APIKey.IsSet() && !c.Providers.OpenAI.APIKey.IsSet() && !c.Providers.Anthropic.APIKey.IsSet() {
		fiberlog.Warn("No provider API key configured, every response will use the offline fallback")
	}

	return nil
}

// ValidationError represents configuration validation errors
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing required configuration fields: " + strings.Join(e.MissingFields, ", ")
}

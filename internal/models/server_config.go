package models

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string `json:"port,omitzero" yaml:"port"`
	AllowedOrigins string `json:"allowed_origins,omitzero" yaml:"allowed_origins"`
	Environment    string `json:"environment,omitzero" yaml:"environment"`
	LogLevel       string `json:"log_level,omitzero" yaml:"log_level"`
	// AdminToken enables the /admin routes when non-empty.
	AdminToken string `json:"-" yaml:"admin_token"`
	// RequestTimeoutMs bounds a whole request; defaults to 30s.
	RequestTimeoutMs int `json:"request_timeout_ms,omitzero" yaml:"request_timeout_ms"`
	// RateLimitRpm is the per-IP request budget; defaults to 60.
	RateLimitRpm int `json:"rate_limit_rpm,omitzero" yaml:"rate_limit_rpm"`
}

package models

// Provider names accepted in candidate identifiers.
const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// ProviderConfig holds connection settings for one text-generation provider.
type ProviderConfig struct {
	APIKey    Credential        `yaml:"api_key" json:"-"`
	BaseURL   string            `yaml:"base_url" json:"base_url,omitzero"`     // Optional custom base URL
	TimeoutMs int               `yaml:"timeout_ms" json:"timeout_ms,omitzero"` // Per-call timeout in milliseconds
	Headers   map[string]string `yaml:"headers" json:"headers,omitzero"`
}

// ProvidersConfig groups the supported providers.
type ProvidersConfig struct {
	Gemini    ProviderConfig `yaml:"gemini"`
	OpenAI    ProviderConfig `yaml:"openai"`
	Anthropic ProviderConfig `yaml:"anthropic"`
}

// Get returns the configuration for a provider name.
func (p ProvidersConfig) Get(name string) (ProviderConfig, bool) {
	switch name {
	case ProviderGemini:
		return p.Gemini, true
	case ProviderOpenAI:
		return p.OpenAI, true
	case ProviderAnthropic:
		return p.Anthropic, true
	default:
		return ProviderConfig{}, false
	}
}

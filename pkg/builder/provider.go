package builder

import (
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
)

type ProviderBuilder struct {
	apiKey    string
	baseURL   string
	timeoutMs int
	headers   map[string]string
}

func NewProviderBuilder(apiKey string) *ProviderBuilder {
	return &ProviderBuilder{
		apiKey:  apiKey,
		headers: make(map[string]string),
	}
}

func (pb *ProviderBuilder) WithBaseURL(url string) *ProviderBuilder {
	pb.baseURL = url
	return pb
}

func (pb *ProviderBuilder) WithTimeout(ms int) *ProviderBuilder {
	pb.timeoutMs = ms
	return pb
}

func (pb *ProviderBuilder) WithHeader(key, value string) *ProviderBuilder {
	pb.headers[key] = value
	return pb
}

func (pb *ProviderBuilder) Build() models.ProviderConfig {
	return models.ProviderConfig{
		APIKey:    models.NewCredential(pb.apiKey),
		BaseURL:   pb.baseURL,
		TimeoutMs: pb.timeoutMs,
		Headers:   pb.headers,
	}
}

func (b *Builder) WithGemini(cfg models.ProviderConfig) *Builder {
	b.cfg.Providers.Gemini = cfg
	return b
}

func (b *Builder) WithOpenAI(cfg models.ProviderConfig) *Builder {
	b.cfg.Providers.OpenAI = cfg
	return b
}

func (b *Builder) WithAnthropic(cfg models.ProviderConfig) *Builder {
	b.cfg.Providers.Anthropic = cfg
	return b
}

// WithCandidates sets the "provider:model" probe order.
func (b *Builder) WithCandidates(candidates ...string) *Builder {
	b.cfg.Models.Candidates = candidates
	return b
}

func (b *Builder) WithMaxCandidates(n int) *Builder {
	b.cfg.Models.MaxCandidates = n
	return b
}

// WithModelMemo keeps the last working model first in line for ttl.
func (b *Builder) WithModelMemo(ttl time.Duration) *Builder {
	b.cfg.Models.MemoTTLMs = int(ttl.Milliseconds())
	return b
}

package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/config"
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/anthropic/messages"
	"github.com/Egham-7/cover-letter-ai/internal/services/chat/completions"
	"github.com/Egham-7/cover-letter-ai/internal/services/gemini/generate"
	"github.com/Egham-7/cover-letter-ai/internal/services/metrics"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Generator sends one prompt to one model and returns the generated text.
type Generator interface {
	Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (string, error) {
	return f(ctx, model, prompt, params)
}

// Registry maps provider names to generators. Only providers with a
// credential are registered, so presence doubles as the credential check.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// NewRegistryFromConfig registers every provider that has an API key.
func NewRegistryFromConfig(cfg *config.Config) *Registry {
	r := NewRegistry()

	if pc := cfg.Providers.Gemini; pc.APIKey.IsSet() {
		r.Register(models.ProviderGemini, generate.NewGenerator(pc), cfg.ProviderTimeout(models.ProviderGemini))
	}
	if pc := cfg.Providers.OpenAI; pc.APIKey.IsSet() {
		r.Register(models.ProviderOpenAI, completions.NewGenerator(pc), cfg.ProviderTimeout(models.ProviderOpenAI))
	}
	if pc := cfg.Providers.Anthropic; pc.APIKey.IsSet() {
		r.Register(models.ProviderAnthropic, messages.NewGenerator(pc), cfg.ProviderTimeout(models.ProviderAnthropic))
	}

	fiberlog.Infof("Provider registry: %d provider(s) with credentials", len(r.generators))
	return r
}

// Register adds a generator. A positive timeout bounds every call.
func (r *Registry) Register(name string, g Generator, timeout time.Duration) {
	r.generators[name] = &instrumented{name: name, inner: g, timeout: timeout}
}

// Lookup returns the generator for a provider.
func (r *Registry) Lookup(name string) (Generator, bool) {
	g, ok := r.generators[name]
	return g, ok
}

// HasCredential reports whether a provider is usable.
func (r *Registry) HasCredential(name string) bool {
	_, ok := r.generators[name]
	return ok
}

// Empty reports whether no provider has a credential.
func (r *Registry) Empty() bool {
	return len(r.generators) == 0
}

// Providers lists the registered provider names.
func (r *Registry) Providers() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	return names
}

type instrumented struct {
	name    string
	inner   Generator
	timeout time.Duration
}

func (i *instrumented) Generate(ctx context.Context, model, prompt string, params models.GenerationParams) (text string, err error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = models.NewProviderError(i.name, "generator panicked",
				fmt.Errorf("%w: %v", models.ErrProviderCallFailure, r))
		}
	}()

	start := time.Now()
	text, err = i.inner.Generate(ctx, model, prompt, params)
	metrics.ProviderCallDuration.WithLabelValues(i.name, metrics.OutcomeOf(err)).Observe(time.Since(start).Seconds())

	return text, err
}

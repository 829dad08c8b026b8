package select_model

import (
	"context"
	"fmt"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/provider"
)

// Prober checks whether a candidate currently answers.
type Prober interface {
	Probe(ctx context.Context, c Candidate) error
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(ctx context.Context, c Candidate) error

func (f ProberFunc) Probe(ctx context.Context, c Candidate) error { return f(ctx, c) }

// GenerationProber probes by sending a tiny prompt with provider defaults.
type GenerationProber struct {
	registry *provider.Registry
	prompt   string
}

func NewGenerationProber(registry *provider.Registry, prompt string) *GenerationProber {
	if prompt == "" {
		prompt = models.DefaultProbePrompt
	}
	return &GenerationProber{registry: registry, prompt: prompt}
}

func (p *GenerationProber) Probe(ctx context.Context, c Candidate) error {
	g, ok := p.registry.Lookup(c.Provider)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrMissingCredential, c.Provider)
	}
	_, err := g.Generate(ctx, c.Model, p.prompt, models.GenerationParams{})
	return err
}

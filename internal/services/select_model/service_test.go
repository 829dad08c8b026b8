package select_model

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProber struct {
	mu     sync.Mutex
	down   map[string]bool
	probed []string
}

func (p *recordingProber) Probe(_ context.Context, c Candidate) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probed = append(p.probed, c.String())
	if p.down[c.String()] {
		return models.ErrModelUnavailable
	}
	return nil
}

func echoRegistry(providers ...string) *provider.Registry {
	r := provider.NewRegistry()
	for _, name := range providers {
		r.Register(name, provider.GeneratorFunc(func(_ context.Context, model, prompt string, _ models.GenerationParams) (string, error) {
			return model + ":" + prompt, nil
		}), 0)
	}
	return r
}

func mustCandidates(t *testing.T, specs ...string) []Candidate {
	t.Helper()
	c, err := ParseCandidates(specs)
	require.NoError(t, err)
	return c
}

func TestParseCandidates(t *testing.T) {
	c := mustCandidates(t, "gemini-1.5-flash", "openai:gpt-4o-mini")
	assert.Equal(t, []Candidate{
		{Provider: "gemini", Model: "gemini-1.5-flash"},
		{Provider: "openai", Model: "gpt-4o-mini"},
	}, c)

	_, err := ParseCandidates([]string{"openai:"})
	assert.Error(t, err)
}

func TestSelectFirstWorkingModel(t *testing.T) {
	prober := &recordingProber{down: map[string]bool{"gemini:gemini-1.5-flash": true}}
	s := NewService(mustCandidates(t, "gemini:gemini-1.5-flash", "gemini:gemini-2.0-flash"), echoRegistry("gemini"), prober, Options{})

	h, err := s.SelectWorkingModel(context.Background(), "req-1")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash", h.Model)
	assert.Equal(t, []string{"gemini:gemini-1.5-flash", "gemini:gemini-2.0-flash"}, prober.probed)

	text, err := h.Generate(context.Background(), "hello", models.LetterParams)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.0-flash:hello", text)
}

func TestSelectExhaustion(t *testing.T) {
	prober := &recordingProber{down: map[string]bool{
		"gemini:a": true,
		"gemini:b": true,
	}}
	s := NewService(mustCandidates(t, "gemini:a", "gemini:b"), echoRegistry("gemini"), prober, Options{})

	_, err := s.SelectWorkingModel(context.Background(), "req-2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrNoModelAvailable))
}

func TestSelectRespectsCap(t *testing.T) {
	prober := &recordingProber{down: map[string]bool{
		"gemini:a": true,
		"gemini:b": true,
	}}
	s := NewService(mustCandidates(t, "gemini:a", "gemini:b", "gemini:c"), echoRegistry("gemini"), prober, Options{MaxCandidates: 2})

	_, err := s.SelectWorkingModel(context.Background(), "req-3")
	assert.True(t, errors.Is(err, models.ErrNoModelAvailable))
	assert.Equal(t, []string{"gemini:a", "gemini:b"}, prober.probed)
}

func TestSelectSkipsProvidersWithoutCredentials(t *testing.T) {
	prober := &recordingProber{}
	s := NewService(mustCandidates(t, "openai:gpt-4o-mini", "gemini:gemini-2.0-flash"), echoRegistry("gemini"), prober, Options{MaxCandidates: 1})

	h, err := s.SelectWorkingModel(context.Background(), "req-4")
	require.NoError(t, err)
	assert.Equal(t, "gemini", h.Provider)
	assert.Equal(t, []string{"gemini:gemini-2.0-flash"}, prober.probed)
}

func TestSelectReprobesFromTopWithoutMemo(t *testing.T) {
	prober := &recordingProber{}
	s := NewService(mustCandidates(t, "gemini:a", "gemini:b"), echoRegistry("gemini"), prober, Options{})

	_, err := s.SelectWorkingModel(context.Background(), "req-5")
	require.NoError(t, err)
	_, err = s.SelectWorkingModel(context.Background(), "req-6")
	require.NoError(t, err)

	assert.Equal(t, []string{"gemini:a", "gemini:a"}, prober.probed)
}

func TestSelectMemoPrefersLastWorkingModel(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prober := &recordingProber{down: map[string]bool{"gemini:a": true}}
	s := NewService(mustCandidates(t, "gemini:a", "gemini:b"), echoRegistry("gemini"), prober, Options{
		MemoTTL: time.Minute,
		Now:     func() time.Time { return now },
	})

	_, err := s.SelectWorkingModel(context.Background(), "req-7")
	require.NoError(t, err)
	prober.probed = nil

	h, err := s.SelectWorkingModel(context.Background(), "req-8")
	require.NoError(t, err)
	assert.Equal(t, "b", h.Model)
	assert.Equal(t, []string{"gemini:b"}, prober.probed)

	now = now.Add(2 * time.Minute)
	prober.probed = nil
	_, err = s.SelectWorkingModel(context.Background(), "req-9")
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini:a", "gemini:b"}, prober.probed)
}

func TestSelectHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewService(mustCandidates(t, "gemini:a"), echoRegistry("gemini"), &recordingProber{}, Options{})
	_, err := s.SelectWorkingModel(ctx, "req-10")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHasCredential(t *testing.T) {
	candidates := mustCandidates(t, "gemini:a")
	assert.True(t, NewService(candidates, echoRegistry("gemini"), &recordingProber{}, Options{}).HasCredential())
	assert.False(t, NewService(candidates, echoRegistry(), &recordingProber{}, Options{}).HasCredential())
}

func TestProbeAll(t *testing.T) {
	prober := &recordingProber{down: map[string]bool{"gemini:b": true}}
	s := NewService(mustCandidates(t, "gemini:a", "gemini:b", "openai:c", "gemini:d"), echoRegistry("gemini"), prober, Options{MaxCandidates: 1})

	statuses := s.ProbeAll(context.Background())
	require.Len(t, statuses, 4)
	assert.Equal(t, StatusAvailable, statuses[0].Status)
	assert.Equal(t, StatusUnavailable, statuses[1].Status)
	assert.NotEmpty(t, statuses[1].Error)
	assert.Equal(t, StatusNoCredential, statuses[2].Status)
	assert.Equal(t, StatusAvailable, statuses[3].Status)
}

func TestGenerationProber(t *testing.T) {
	var gotPrompt string
	r := provider.NewRegistry()
	r.Register("gemini", provider.GeneratorFunc(func(_ context.Context, _, prompt string, _ models.GenerationParams) (string, error) {
		gotPrompt = prompt
		return "ok", nil
	}), time.Second)

	p := NewGenerationProber(r, "")
	require.NoError(t, p.Probe(context.Background(), Candidate{Provider: "gemini", Model: "x"}))
	assert.Equal(t, "test", gotPrompt)

	err := p.Probe(context.Background(), Candidate{Provider: "openai", Model: "y"})
	assert.ErrorIs(t, err, models.ErrMissingCredential)
}

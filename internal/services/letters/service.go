package letters

import (
	"context"
	"strings"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/cache"
	"github.com/Egham-7/cover-letter-ai/internal/services/evaluation"
	"github.com/Egham-7/cover-letter-ai/internal/services/fallback"
	"github.com/Egham-7/cover-letter-ai/internal/services/select_model"
	"github.com/Egham-7/cover-letter-ai/internal/services/usage"
)

// ModelSelector finds a model that currently answers.
type ModelSelector interface {
	HasCredential() bool
	SelectWorkingModel(ctx context.Context, requestID string) (select_model.Handle, error)
}

// Service resolves letters, evaluations and field suggestions. Every method
// returns a usable value; provider problems degrade to offline content.
type Service struct {
	cache    *cache.ResponseCache
	selector ModelSelector
	parser   evaluation.StructuredParser
	fallback *fallback.Provider
	recorder usage.Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithRecorder logs every resolution to r.
func WithRecorder(r usage.Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithParser replaces the evaluation parser.
func WithParser(p evaluation.StructuredParser) Option {
	return func(s *Service) { s.parser = p }
}

// WithFallback replaces the offline content provider.
func WithFallback(p *fallback.Provider) Option {
	return func(s *Service) { s.fallback = p }
}

// NewService wires the orchestrators.
func NewService(c *cache.ResponseCache, selector ModelSelector, opts ...Option) *Service {
	s := &Service{
		cache:    c,
		selector: selector,
		parser:   evaluation.NewParser(),
		fallback: fallback.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateLetter drafts a cover letter.
func (s *Service) GenerateLetter(ctx context.Context, meta models.RequestMeta, req models.LetterGenerationRequest) models.Resolution[string] {
	return resolve(ctx, s, meta, flow[string]{
		kind:     models.KindGenerate,
		key:      letterKey(req),
		fallback: func() string { return s.fallback.Letter(req) },
		live: func(ctx context.Context, h select_model.Handle) (string, error) {
			return generateText(ctx, h, letterPrompt(req), models.LetterParams)
		},
	})
}

// EvaluateLetter scores an existing letter.
func (s *Service) EvaluateLetter(ctx context.Context, meta models.RequestMeta, req models.LetterEvaluationRequest) models.Resolution[models.LetterEvaluation] {
	return resolve(ctx, s, meta, flow[models.LetterEvaluation]{
		kind:     models.KindEvaluate,
		key:      evaluationKey(req),
		fallback: s.fallback.Evaluation,
		live: func(ctx context.Context, h select_model.Handle) (models.LetterEvaluation, error) {
			text, err := h.Generate(ctx, evaluationPrompt(req), models.EvaluationParams)
			if err != nil {
				return models.LetterEvaluation{}, err
			}
			return s.parser.Parse(text)
		},
	})
}

// SuggestField proposes a value for one form field. Fields with a stored
// suggestion table are answered without a model call.
func (s *Service) SuggestField(ctx context.Context, meta models.RequestMeta, req models.FieldSuggestionRequest) models.Resolution[string] {
	return resolve(ctx, s, meta, flow[string]{
		kind:     models.KindSuggest,
		key:      suggestionKey(req),
		fallback: func() string { return s.fallback.Suggestion(req.Field, req.JobTitle, req.CompanyName) },
		predefined: func() (string, bool) {
			return fallback.Predefined(req.Field, req.JobTitle)
		},
		live: func(ctx context.Context, h select_model.Handle) (string, error) {
			text, err := generateText(ctx, h, suggestionPrompt(req), models.SuggestionParams)
			return strings.TrimSpace(text), err
		},
	})
}

// ClearCache drops every cached response.
func (s *Service) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

func generateText(ctx context.Context, h select_model.Handle, prompt string, params models.GenerationParams) (string, error) {
	text, err := h.Generate(ctx, prompt, params)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", models.ErrEmptyResponse
	}
	return text, nil
}

package letters

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/utils"
)

// DebugResult shows how a raw model answer goes through JSON extraction.
type DebugResult struct {
	OriginalText      string  `json:"originalText"`
	ExtractedJSONText string  `json:"extractedJsonText"`
	ParsedJSON        any     `json:"parsedJson"`
	ParseError        *string `json:"parseError"`
	ContainsCodeBlock bool    `json:"containsCodeBlock"`
	Model             string  `json:"model"`
}

// DebugJSON sends prompt to a live model with evaluation parameters and
// reports the extraction steps. Unlike the orchestrators it has no fallback,
// so provider errors are returned.
func (s *Service) DebugJSON(ctx context.Context, requestID, prompt string) (DebugResult, error) {
	if !s.selector.HasCredential() {
		return DebugResult{}, models.NewInternalError("no provider credential configured", models.ErrMissingCredential)
	}

	h, err := s.selector.SelectWorkingModel(ctx, requestID)
	if err != nil {
		return DebugResult{}, models.NewProviderError("selector", "no available models", err)
	}

	text, err := h.Generate(ctx, prompt, models.EvaluationParams)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return DebugResult{}, err
		}
		return DebugResult{}, models.NewProviderError(h.Provider, "generation failed", errors.Join(models.ErrProviderCallFailure, err))
	}

	result := DebugResult{
		OriginalText:      text,
		ExtractedJSONText: utils.ExtractJSON(text),
		ContainsCodeBlock: utils.ContainsCodeBlock(text),
		Model:             h.String(),
	}
	if err := json.Unmarshal([]byte(result.ExtractedJSONText), &result.ParsedJSON); err != nil {
		msg := err.Error()
		result.ParseError = &msg
		result.ParsedJSON = nil
	}
	return result, nil
}

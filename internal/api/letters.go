package api

import (
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/letters"
	"github.com/Egham-7/cover-letter-ai/internal/services/middleware"
	"github.com/Egham-7/cover-letter-ai/internal/services/request"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// LettersHandler serves letter generation, evaluation and field suggestions.
// Once the body validates these routes always answer 200; provider trouble
// shows up as source "fallback" with a reason.
type LettersHandler struct {
	requestSvc  *request.BaseService
	responseSvc *response.BaseService
	lettersSvc  *letters.Service
}

// NewLettersHandler initializes the letters handler with injected dependencies.
func NewLettersHandler(requestSvc *request.BaseService, responseSvc *response.BaseService, lettersSvc *letters.Service) *LettersHandler {
	return &LettersHandler{
		requestSvc:  requestSvc,
		responseSvc: responseSvc,
		lettersSvc:  lettersSvc,
	}
}

func (h *LettersHandler) meta(c *fiber.Ctx) models.RequestMeta {
	return models.RequestMeta{
		RequestID: h.requestSvc.GetRequestID(c),
		Offline:   middleware.IsOffline(c),
	}
}

// GenerateLetter handles POST /api/generate-letter.
func (h *LettersHandler) GenerateLetter(c *fiber.Ctx) error {
	meta := h.meta(c)

	var req models.LetterGenerationRequest
	if err := h.requestSvc.ParseBody(c, &req); err != nil {
		fiberlog.Warnf("[%s] Invalid generate-letter request: %v", meta.RequestID, err)
		return h.responseSvc.FromError(c, err)
	}

	fiberlog.Infof("[%s] Generating letter for %s at %s", meta.RequestID, req.JobTitle, req.CompanyName)
	res := h.lettersSvc.GenerateLetter(c.UserContext(), meta, req)

	return h.responseSvc.Success(c, models.LetterResponse{
		Letter: res.Value,
		Source: res.Source,
		Model:  res.Model,
		Reason: res.Reason,
	})
}

// EvaluateLetter handles POST /api/evaluate-letter.
func (h *LettersHandler) EvaluateLetter(c *fiber.Ctx) error {
	meta := h.meta(c)

	var req models.LetterEvaluationRequest
	if err := h.requestSvc.ParseBody(c, &req); err != nil {
		fiberlog.Warnf("[%s] Invalid evaluate-letter request: %v", meta.RequestID, err)
		return h.responseSvc.FromError(c, err)
	}

	res := h.lettersSvc.EvaluateLetter(c.UserContext(), meta, req)

	return h.responseSvc.Success(c, models.EvaluationResponse{
		Evaluation: res.Value,
		Source:     res.Source,
		Model:      res.Model,
		Reason:     res.Reason,
	})
}

// SuggestField handles POST /api/field-suggestion.
func (h *LettersHandler) SuggestField(c *fiber.Ctx) error {
	meta := h.meta(c)

	var req models.FieldSuggestionRequest
	if err := h.requestSvc.ParseBody(c, &req); err != nil {
		return h.responseSvc.FromError(c, err)
	}

	res := h.lettersSvc.SuggestField(c.UserContext(), meta, req)

	return h.responseSvc.Success(c, models.SuggestionResponse{
		Suggestion: res.Value,
		Source:     res.Source,
		Model:      res.Model,
		Reason:     res.Reason,
	})
}

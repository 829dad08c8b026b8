package api

import (
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/request"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"
	"github.com/Egham-7/cover-letter-ai/internal/services/translation"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

const translationFailedMessage = "Failed to translate text"

// TranslateHandler passes text through to the translation service.
type TranslateHandler struct {
	requestSvc     *request.BaseService
	responseSvc    *response.BaseService
	translationSvc *translation.Service
}

// NewTranslateHandler accepts a nil service, in which case every request fails with 502.
func NewTranslateHandler(requestSvc *request.BaseService, responseSvc *response.BaseService, translationSvc *translation.Service) *TranslateHandler {
	return &TranslateHandler{
		requestSvc:     requestSvc,
		responseSvc:    responseSvc,
		translationSvc: translationSvc,
	}
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(c *fiber.Ctx) error {
	reqID := h.requestSvc.GetRequestID(c)

	var req models.TranslationRequest
	if err := h.requestSvc.ParseBody(c, &req); err != nil {
		return h.responseSvc.FromError(c, err)
	}

	if h.translationSvc == nil {
		fiberlog.Warnf("[%s] Translation requested but no endpoint is configured", reqID)
		return h.failed(c)
	}

	result, err := h.translationSvc.Translate(c.UserContext(), req, reqID)
	if err != nil {
		return h.failed(c)
	}

	return h.responseSvc.Success(c, result)
}

func (h *TranslateHandler) failed(c *fiber.Ctx) error {
	return h.responseSvc.Error(c, fiber.StatusBadGateway, translationFailedMessage, string(models.ErrorTypeProvider), "TRANSLATION_FAILED")
}

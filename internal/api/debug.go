package api

import (
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/letters"
	"github.com/Egham-7/cover-letter-ai/internal/services/request"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// DebugHandler exposes the raw model answer next to its JSON extraction.
type DebugHandler struct {
	requestSvc  *request.BaseService
	responseSvc *response.BaseService
	lettersSvc  *letters.Service
}

func NewDebugHandler(requestSvc *request.BaseService, responseSvc *response.BaseService, lettersSvc *letters.Service) *DebugHandler {
	return &DebugHandler{
		requestSvc:  requestSvc,
		responseSvc: responseSvc,
		lettersSvc:  lettersSvc,
	}
}

// DebugJSON handles POST /api/debug/json.
func (h *DebugHandler) DebugJSON(c *fiber.Ctx) error {
	reqID := h.requestSvc.GetRequestID(c)

	var req models.DebugJSONRequest
	if err := h.requestSvc.ParseBody(c, &req); err != nil {
		return h.responseSvc.FromError(c, err)
	}

	result, err := h.lettersSvc.DebugJSON(c.UserContext(), reqID, req.Prompt)
	if err != nil {
		fiberlog.Errorf("[%s] Debug JSON request failed: %v", reqID, err)
		return h.responseSvc.FromError(c, err)
	}

	return h.responseSvc.Success(c, result)
}

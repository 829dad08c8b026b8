package api

import (
	"github.com/Egham-7/cover-letter-ai/internal/services/response"
	"github.com/Egham-7/cover-letter-ai/internal/services/select_model"

	"github.com/gofiber/fiber/v2"
)

// ModelsHandler reports which candidate models currently answer.
type ModelsHandler struct {
	responseSvc *response.BaseService
	selectorSvc *select_model.Service
}

func NewModelsHandler(responseSvc *response.BaseService, selectorSvc *select_model.Service) *ModelsHandler {
	return &ModelsHandler{responseSvc: responseSvc, selectorSvc: selectorSvc}
}

// ListModels handles GET /api/models. Every candidate is probed, so this is
// as slow as the slowest provider.
func (h *ModelsHandler) ListModels(c *fiber.Ctx) error {
	return h.responseSvc.Success(c, fiber.Map{
		"models": h.selectorSvc.ProbeAll(c.UserContext()),
	})
}

package api

import (
	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/letters"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"
	"github.com/Egham-7/cover-letter-ai/internal/services/usage"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

const defaultResolutionLimit = 50

type AdminHandler struct {
	responseSvc *response.BaseService
	lettersSvc  *letters.Service
	usageSvc    *usage.Service
}

// NewAdminHandler builds the maintenance handler. usageSvc is nil when no
// database is configured.
func NewAdminHandler(responseSvc *response.BaseService, lettersSvc *letters.Service, usageSvc *usage.Service) *AdminHandler {
	return &AdminHandler{
		responseSvc: responseSvc,
		lettersSvc:  lettersSvc,
		usageSvc:    usageSvc,
	}
}

// ClearCache handles DELETE /admin/cache.
func (h *AdminHandler) ClearCache(c *fiber.Ctx) error {
	if err := h.lettersSvc.ClearCache(c.UserContext()); err != nil {
		fiberlog.Errorf("Failed to clear response cache: %v", err)
		return h.responseSvc.FromError(c, models.NewInternalError("failed to clear cache", err))
	}
	fiberlog.Info("Response cache cleared")
	return c.SendStatus(fiber.StatusNoContent)
}

// Resolutions handles GET /admin/resolutions.
func (h *AdminHandler) Resolutions(c *fiber.Ctx) error {
	if h.usageSvc == nil {
		return h.responseSvc.Error(c, fiber.StatusNotFound, "resolution log is not enabled", string(models.ErrorTypeNotFound), "")
	}

	records, err := h.usageSvc.Recent(c.UserContext(), c.QueryInt("limit", defaultResolutionLimit))
	if err != nil {
		return h.responseSvc.FromError(c, models.NewInternalError("failed to load resolutions", err))
	}

	stats, err := h.usageSvc.Stats(c.UserContext())
	if err != nil {
		return h.responseSvc.FromError(c, models.NewInternalError("failed to load resolution stats", err))
	}

	return h.responseSvc.Success(c, fiber.Map{
		"resolutions": records,
		"stats":       stats,
	})
}

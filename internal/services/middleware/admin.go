package middleware

import (
	"crypto/subtle"

	"github.com/Egham-7/cover-letter-ai/internal/models"
	"github.com/Egham-7/cover-letter-ai/internal/services/response"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
)

// AdminTokenHeader carries the shared admin secret.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards maintenance routes with a shared token.
type AdminAuth struct {
	token   []byte
	respSvc *response.BaseService
}

func NewAdminAuth(token string, respSvc *response.BaseService) *AdminAuth {
	return &AdminAuth{token: []byte(token), respSvc: respSvc}
}

// RequireToken rejects requests whose X-Admin-Token does not match.
func (a *AdminAuth) RequireToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := []byte(c.Get(AdminTokenHeader))
		if len(a.token) == 0 || subtle.ConstantTimeCompare(got, a.token) != 1 {
			fiberlog.Warnf("Rejected admin request from %s to %s", c.IP(), c.Path())
			return a.respSvc.FromError(c, models.NewAuthorizationError("invalid admin token"))
		}
		return c.Next()
	}
}

package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

// RequirePermission enforces the role grid for the authenticated
// session. Must run behind SessionRequired.
func RequirePermission(auth authorize.IAuthorization, res authorize.Resource, act authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		s, ok := SessionFromFiber(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		err := auth.MustEnforce(c.Context(), authorize.Role(s.Role), res, act)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, authorize.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}
}

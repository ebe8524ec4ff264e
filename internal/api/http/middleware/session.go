package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/pkg/reqctx"
	"github.com/shinewhite/clinic_backend/pkg/session"
)

const LocalSession = "session"

// SessionRequired resolves the session cookie and rejects the request
// with 401 when it is missing, unknown or expired. The session lands in
// locals and in the request context.
func SessionRequired(store session.Store, cookieName string) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		s, err := store.Get(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		c.Locals(LocalSession, s)
		c.SetContext(reqctx.WithSession(c.Context(), s))

		return c.Next()
	}
}

// SessionFromFiber retrieves the authenticated session from Fiber
// locals. Only valid behind SessionRequired.
func SessionFromFiber(c fiber.Ctx) (*session.Session, bool) {
	v := c.Locals(LocalSession)
	s, ok := v.(*session.Session)
	return s, ok && s != nil
}

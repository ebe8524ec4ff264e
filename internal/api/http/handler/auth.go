package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/config"
	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/user"
	"github.com/shinewhite/clinic_backend/internal/store"
	"github.com/shinewhite/clinic_backend/pkg/session"
)

// userSummary is the account shape returned by auth endpoints; it never
// includes contact details or the password.
type userSummary struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	FullName string     `json:"fullName"`
	Role     store.Role `json:"role"`
}

func summarize(u *store.User) userSummary {
	return userSummary{ID: u.ID, Username: u.Username, FullName: u.FullName, Role: u.Role}
}

type AuthHandler struct {
	users    user.Service
	sessions session.Store
	cfg      config.SessionConfig
}

func NewAuthHandler(users user.Service, sessions session.Store, cfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, cfg: cfg}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Username == "" || body.Password == "" {
		return badRequest(c, "username and password are required")
	}

	u, err := h.users.Authenticate(c.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return unauthorized(c, "invalid username or password")
		}
		return internalError(c)
	}

	s, err := h.sessions.Create(c.Context(), u.ID, string(u.Role), u.FullName)
	if err != nil {
		return internalError(c)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    s.Token,
		Expires:  time.Now().Add(time.Duration(h.cfg.TTLMinutes) * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ok(c, summarize(u))
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if token := c.Cookies(h.cfg.CookieName); token != "" {
		if err := h.sessions.Delete(c.Context(), token); err != nil {
			return internalError(c)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ok(c, fiber.Map{"message": "logged out"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c fiber.Ctx) error {
	s, okSession := middleware.SessionFromFiber(c)
	if !okSession {
		return unauthorized(c, "not logged in")
	}

	u, err := h.users.GetByID(c.Context(), s.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, summarize(u))
}

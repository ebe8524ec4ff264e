package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	uh *handler.UserHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", sessionRequired)

	// The doctor listing backs scheduling screens and is open to all
	// staff; the full account list is not.
	users.Get("/doctors", uh.ListDoctors)

	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), uh.List)
	users.Post("/", requirePerm(authorize.ResourceUser, authorize.ActionCreate), uh.Create)
}

package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerServiceRoutes(
	api fiber.Router,
	ch *handler.CatalogHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	services := api.Group("/services", sessionRequired)

	services.Get("/", ch.List)
	services.Get("/:id", ch.Get)
	services.Post("/", requirePerm(authorize.ResourceService, authorize.ActionCreate), ch.Create)
	services.Patch("/:id", requirePerm(authorize.ResourceService, authorize.ActionUpdate), ch.Update)
}

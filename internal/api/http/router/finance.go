package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerFinanceRoutes(
	api fiber.Router,
	fh *handler.FinanceHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	readPerm := requirePerm(authorize.ResourceFinance, authorize.ActionRead)

	finances := api.Group("/finances", sessionRequired)

	finances.Get("/", readPerm, fh.List)
	finances.Get("/patient/:patientId", readPerm, fh.ByPatient)
	finances.Get("/:id", readPerm, fh.Get)
	finances.Post("/", requirePerm(authorize.ResourceFinance, authorize.ActionCreate), fh.Create)
}

package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerTreatmentRoutes(
	api fiber.Router,
	th *handler.TreatmentHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	plans := api.Group("/treatment-plans", sessionRequired)

	plans.Get("/patient/:patientId", th.ByPatient)
	plans.Get("/:id", th.Get)
	plans.Post("/", requirePerm(authorize.ResourceTreatmentPlan, authorize.ActionCreate), th.Create)
	plans.Patch("/:id", requirePerm(authorize.ResourceTreatmentPlan, authorize.ActionUpdate), th.Update)
}

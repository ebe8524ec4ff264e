package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerAnalyticsRoutes(
	api fiber.Router,
	ah *handler.AnalyticsHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	managerOnly := requirePerm(authorize.ResourceAnalytics, authorize.ActionRead)

	reports := api.Group("/analytics", sessionRequired)

	reports.Get("/revenue", managerOnly, ah.Revenue)
	reports.Get("/patient-growth", managerOnly, ah.PatientGrowth)
	reports.Get("/appointment-stats", managerOnly, ah.AppointmentStats)
	reports.Get("/inventory-consumption", managerOnly, ah.InventoryConsumption)

	// The dashboard backs every role's landing page.
	reports.Get("/dashboard", ah.Dashboard)
}

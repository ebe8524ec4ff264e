package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerInventoryRoutes(
	api fiber.Router,
	ih *handler.InventoryHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	inv := api.Group("/inventory", sessionRequired)

	inv.Get("/", ih.ListItems)
	inv.Get("/low-stock", ih.LowStock)
	inv.Post("/", requirePerm(authorize.ResourceInventory, authorize.ActionCreate), ih.CreateItem)

	// Consumption is logged by the clinical staff who used the stock,
	// not by managers or the front desk.
	inv.Post("/consumption", requirePerm(authorize.ResourceConsumption, authorize.ActionCreate), ih.RecordConsumption)
	inv.Get("/consumption/patient/:patientId", ih.ConsumptionsByPatient)

	inv.Patch("/:id", requirePerm(authorize.ResourceInventory, authorize.ActionUpdate), ih.UpdateItem)
}

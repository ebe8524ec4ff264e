package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
	"github.com/shinewhite/clinic_backend/pkg/authorize"
)

func (r *Router) registerWhatsappRoutes(
	api fiber.Router,
	wh *handler.WhatsappHandler,
	sessionRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	readPerm := requirePerm(authorize.ResourceWhatsApp, authorize.ActionRead)

	wa := api.Group("/whatsapp", sessionRequired)

	wa.Get("/messages", readPerm, wh.List)
	wa.Get("/messages/patient/:patientId", readPerm, wh.ByPatient)
	wa.Post("/send", requirePerm(authorize.ResourceWhatsApp, authorize.ActionSend), wh.Send)
}

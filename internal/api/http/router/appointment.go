package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	sessionRequired fiber.Handler,
) {
	appointments := api.Group("/appointments", sessionRequired)

	// Literal segments first so "today", "doctor" and "patient" are
	// never parsed as appointment ids.
	appointments.Get("/", ah.List)
	appointments.Get("/today", ah.Today)
	appointments.Get("/doctor/:id", ah.ByDoctor)
	appointments.Get("/patient/:id", ah.ByPatient)
	appointments.Get("/:id", ah.Get)
	appointments.Post("/", ah.Create)
	appointments.Patch("/:id", ah.Update)
}

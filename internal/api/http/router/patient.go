package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	sessionRequired fiber.Handler,
) {
	patients := api.Group("/patients", sessionRequired)

	patients.Get("/", ph.List)
	patients.Get("/search", ph.Search)
	patients.Get("/:id", ph.Get)
	patients.Post("/", ph.Create)
	patients.Patch("/:id", ph.Update)
}

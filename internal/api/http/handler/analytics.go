package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/service/analytics"
)

type AnalyticsHandler struct {
	svc analytics.Service
}

func NewAnalyticsHandler(svc analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// GET /api/analytics/revenue
func (h *AnalyticsHandler) Revenue(c fiber.Ctx) error {
	points, err := h.svc.MonthlyRevenue(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, points)
}

// GET /api/analytics/patient-growth
func (h *AnalyticsHandler) PatientGrowth(c fiber.Ctx) error {
	points, err := h.svc.PatientGrowth(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, points)
}

// GET /api/analytics/appointment-stats
func (h *AnalyticsHandler) AppointmentStats(c fiber.Ctx) error {
	counts, err := h.svc.AppointmentStatusStats(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, counts)
}

// GET /api/analytics/inventory-consumption
func (h *AnalyticsHandler) InventoryConsumption(c fiber.Ctx) error {
	stats, err := h.svc.InventoryConsumptionStats(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

// GET /api/analytics/dashboard
func (h *AnalyticsHandler) Dashboard(c fiber.Ctx) error {
	stats, err := h.svc.Dashboard(c.Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, stats)
}

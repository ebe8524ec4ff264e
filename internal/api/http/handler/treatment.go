package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/service/treatment"
)

type TreatmentHandler struct {
	svc treatment.Service
}

func NewTreatmentHandler(svc treatment.Service) *TreatmentHandler {
	return &TreatmentHandler{svc: svc}
}

func mapTreatmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, treatment.ErrPlanNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, treatment.ErrInvalidPlanData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/treatment-plans/patient/:patientId
func (h *TreatmentHandler) ByPatient(c fiber.Ctx) error {
	patientID, valid := idParam(c, "patientId")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	plans, err := h.svc.ByPatient(c.Context(), patientID)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, plans)
}

// GET /api/treatment-plans/:id
func (h *TreatmentHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid treatment plan id")
	}

	plan, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapTreatmentError(c, err)
	}
	return ok(c, plan)
}

// POST /api/treatment-plans
func (h *TreatmentHandler) Create(c fiber.Ctx) error {
	var body struct {
		PatientID   int64           `json:"patientId"`
		DoctorID    int64           `json:"doctorId"`
		Title       string          `json:"title"`
		Description string          `json:"description"`
		TotalCost   decimal.Decimal `json:"totalCost"`
		StartDate   *time.Time      `json:"startDate"`
		EndDate     *time.Time      `json:"endDate"`
		Progress    int             `json:"progress"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	plan, err := h.svc.Create(c.Context(), treatment.CreatePlanRequest{
		PatientID:   body.PatientID,
		DoctorID:    body.DoctorID,
		Title:       body.Title,
		Description: body.Description,
		TotalCost:   body.TotalCost,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Progress:    body.Progress,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}

	return created(c, plan)
}

// PATCH /api/treatment-plans/:id
func (h *TreatmentHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid treatment plan id")
	}

	var body struct {
		PatientID   *int64           `json:"patientId"`
		DoctorID    *int64           `json:"doctorId"`
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		TotalCost   *decimal.Decimal `json:"totalCost"`
		StartDate   *time.Time       `json:"startDate"`
		EndDate     *time.Time       `json:"endDate"`
		Progress    *int             `json:"progress"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	plan, err := h.svc.Update(c.Context(), id, treatment.UpdatePlanRequest{
		PatientID:   body.PatientID,
		DoctorID:    body.DoctorID,
		Title:       body.Title,
		Description: body.Description,
		TotalCost:   body.TotalCost,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Progress:    body.Progress,
	})
	if err != nil {
		return mapTreatmentError(c, err)
	}

	return ok(c, plan)
}

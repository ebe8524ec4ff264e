package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPatientData):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrEmptySearchQuery):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	patients, err := h.svc.List(c.Context())
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /api/patients/search?q=
func (h *PatientHandler) Search(c fiber.Ctx) error {
	patients, err := h.svc.Search(c.Context(), c.Query("q"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, patients)
}

// GET /api/patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// POST /api/patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		FullName    string     `json:"fullName"`
		PhoneNumber string     `json:"phoneNumber"`
		Email       string     `json:"email"`
		Address     string     `json:"address"`
		BirthDate   *time.Time `json:"birthDate"`
		Notes       string     `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreatePatientRequest{
		FullName:    body.FullName,
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
		Address:     body.Address,
		BirthDate:   body.BirthDate,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// PATCH /api/patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FullName    *string    `json:"fullName"`
		PhoneNumber *string    `json:"phoneNumber"`
		Email       *string    `json:"email"`
		Address     *string    `json:"address"`
		BirthDate   *time.Time `json:"birthDate"`
		Notes       *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, patient.UpdatePatientRequest{
		FullName:    body.FullName,
		PhoneNumber: body.PhoneNumber,
		Email:       body.Email,
		Address:     body.Address,
		BirthDate:   body.BirthDate,
		Notes:       body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

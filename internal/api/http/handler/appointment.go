package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/appointment"
	"github.com/shinewhite/clinic_backend/internal/store"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrAppointmentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidAppointmentData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	appointments, err := h.svc.List(c.Context())
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointments)
}

// GET /api/appointments/today
func (h *AppointmentHandler) Today(c fiber.Ctx) error {
	appointments, err := h.svc.TodayEnriched(c.Context())
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointments)
}

// GET /api/appointments/:id
func (h *AppointmentHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appt)
}

// GET /api/appointments/doctor/:id
func (h *AppointmentHandler) ByDoctor(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid doctor id")
	}

	appointments, err := h.svc.ByDoctor(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointments)
}

// GET /api/appointments/patient/:id
func (h *AppointmentHandler) ByPatient(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	appointments, err := h.svc.ByPatient(c.Context(), id)
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return ok(c, appointments)
}

// POST /api/appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		PatientID int64     `json:"patientId"`
		DoctorID  int64     `json:"doctorId"`
		ServiceID *int64    `json:"serviceId"`
		StartTime time.Time `json:"startTime"`
		EndTime   time.Time `json:"endTime"`
		Status    string    `json:"status"`
		Notes     string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	appt, err := h.svc.Create(c.Context(), appointment.CreateAppointmentRequest{
		PatientID: body.PatientID,
		DoctorID:  body.DoctorID,
		ServiceID: body.ServiceID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Status:    store.AppointmentStatus(body.Status),
		Notes:     body.Notes,
		CreatedBy: sess.UserID,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// PATCH /api/appointments/:id
func (h *AppointmentHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid appointment id")
	}

	var body struct {
		PatientID *int64     `json:"patientId"`
		DoctorID  *int64     `json:"doctorId"`
		ServiceID *int64     `json:"serviceId"`
		StartTime *time.Time `json:"startTime"`
		EndTime   *time.Time `json:"endTime"`
		Status    *string    `json:"status"`
		Notes     *string    `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	var status *store.AppointmentStatus
	if body.Status != nil {
		s := store.AppointmentStatus(*body.Status)
		status = &s
	}

	appt, err := h.svc.Update(c.Context(), id, appointment.UpdateAppointmentRequest{
		PatientID: body.PatientID,
		DoctorID:  body.DoctorID,
		ServiceID: body.ServiceID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Status:    status,
		Notes:     body.Notes,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

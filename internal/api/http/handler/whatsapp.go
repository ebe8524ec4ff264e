package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/whatsapp"
)

type WhatsappHandler struct {
	svc whatsapp.Service
}

func NewWhatsappHandler(svc whatsapp.Service) *WhatsappHandler {
	return &WhatsappHandler{svc: svc}
}

func mapWhatsappError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, whatsapp.ErrInvalidMessageData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/whatsapp/messages
func (h *WhatsappHandler) List(c fiber.Ctx) error {
	messages, err := h.svc.ListEnriched(c.Context())
	if err != nil {
		return mapWhatsappError(c, err)
	}
	return ok(c, messages)
}

// GET /api/whatsapp/messages/patient/:patientId
func (h *WhatsappHandler) ByPatient(c fiber.Ctx) error {
	patientID, valid := idParam(c, "patientId")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	messages, err := h.svc.ByPatient(c.Context(), patientID)
	if err != nil {
		return mapWhatsappError(c, err)
	}
	return ok(c, messages)
}

// POST /api/whatsapp/send
func (h *WhatsappHandler) Send(c fiber.Ctx) error {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		PatientID     *int64 `json:"patientId"`
		AppointmentID *int64 `json:"appointmentId"`
		PhoneNumber   string `json:"phoneNumber"`
		MessageType   string `json:"messageType"`
		Message       string `json:"message"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	msg, err := h.svc.Send(c.Context(), whatsapp.SendMessageRequest{
		PatientID:     body.PatientID,
		AppointmentID: body.AppointmentID,
		PhoneNumber:   body.PhoneNumber,
		MessageType:   body.MessageType,
		Message:       body.Message,
		SentBy:        sess.UserID,
	})
	if err != nil {
		return mapWhatsappError(c, err)
	}

	return created(c, msg)
}

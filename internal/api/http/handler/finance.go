package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/finance"
)

type FinanceHandler struct {
	svc finance.Service
}

func NewFinanceHandler(svc finance.Service) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func mapFinanceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, finance.ErrTransactionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, finance.ErrInvalidTransactionData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/finances
func (h *FinanceHandler) List(c fiber.Ctx) error {
	transactions, err := h.svc.List(c.Context())
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, transactions)
}

// GET /api/finances/patient/:patientId
func (h *FinanceHandler) ByPatient(c fiber.Ctx) error {
	patientID, valid := idParam(c, "patientId")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	transactions, err := h.svc.ByPatient(c.Context(), patientID)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, transactions)
}

// GET /api/finances/:id
func (h *FinanceHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid transaction id")
	}

	tx, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapFinanceError(c, err)
	}
	return ok(c, tx)
}

// POST /api/finances
func (h *FinanceHandler) Create(c fiber.Ctx) error {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		PatientID     *int64          `json:"patientId"`
		AppointmentID *int64          `json:"appointmentId"`
		Amount        decimal.Decimal `json:"amount"`
		Type          string          `json:"type"`
		Category      string          `json:"category"`
		Description   string          `json:"description"`
		Date          time.Time       `json:"date"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	tx, err := h.svc.Create(c.Context(), finance.CreateTransactionRequest{
		PatientID:     body.PatientID,
		AppointmentID: body.AppointmentID,
		Amount:        body.Amount,
		Type:          body.Type,
		Category:      body.Category,
		Description:   body.Description,
		Date:          body.Date,
		CreatedBy:     sess.UserID,
	})
	if err != nil {
		return mapFinanceError(c, err)
	}

	return created(c, tx)
}

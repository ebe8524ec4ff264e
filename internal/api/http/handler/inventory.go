package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/api/http/middleware"
	"github.com/shinewhite/clinic_backend/internal/service/inventory"
)

type InventoryHandler struct {
	svc inventory.Service
}

func NewInventoryHandler(svc inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func mapInventoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, inventory.ErrInvalidItemData):
		return badRequest(c, err.Error())
	case errors.Is(err, inventory.ErrInvalidConsumption):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/inventory
func (h *InventoryHandler) ListItems(c fiber.Ctx) error {
	items, err := h.svc.ListItems(c.Context())
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, items)
}

// GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c fiber.Ctx) error {
	items, err := h.svc.LowStock(c.Context())
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, items)
}

// POST /api/inventory
func (h *InventoryHandler) CreateItem(c fiber.Ctx) error {
	var body struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Quantity    decimal.Decimal `json:"quantity"`
		MinQuantity int64           `json:"minQuantity"`
		Unit        string          `json:"unit"`
		Price       decimal.Decimal `json:"price"`
		Category    string          `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.CreateItem(c.Context(), inventory.CreateItemRequest{
		Name:        body.Name,
		Description: body.Description,
		Quantity:    body.Quantity,
		MinQuantity: body.MinQuantity,
		Unit:        body.Unit,
		Price:       body.Price,
		Category:    body.Category,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, item)
}

// PATCH /api/inventory/:id
func (h *InventoryHandler) UpdateItem(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid item id")
	}

	var body struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Quantity    *decimal.Decimal `json:"quantity"`
		MinQuantity *int64           `json:"minQuantity"`
		Unit        *string          `json:"unit"`
		Price       *decimal.Decimal `json:"price"`
		Category    *string          `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	item, err := h.svc.UpdateItem(c.Context(), id, inventory.UpdateItemRequest{
		Name:        body.Name,
		Description: body.Description,
		Quantity:    body.Quantity,
		MinQuantity: body.MinQuantity,
		Unit:        body.Unit,
		Price:       body.Price,
		Category:    body.Category,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return ok(c, item)
}

// POST /api/inventory/consumption
func (h *InventoryHandler) RecordConsumption(c fiber.Ctx) error {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return unauthorized(c, "authentication required")
	}

	var body struct {
		ItemID        int64           `json:"itemId"`
		AppointmentID *int64          `json:"appointmentId"`
		PatientID     *int64          `json:"patientId"`
		Quantity      decimal.Decimal `json:"quantity"`
		Notes         string          `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	record, err := h.svc.RecordConsumption(c.Context(), inventory.RecordConsumptionRequest{
		ItemID:        body.ItemID,
		AppointmentID: body.AppointmentID,
		PatientID:     body.PatientID,
		Quantity:      body.Quantity,
		UsedBy:        sess.UserID,
		Notes:         body.Notes,
	})
	if err != nil {
		return mapInventoryError(c, err)
	}

	return created(c, record)
}

// GET /api/inventory/consumption/patient/:patientId
func (h *InventoryHandler) ConsumptionsByPatient(c fiber.Ctx) error {
	patientID, valid := idParam(c, "patientId")
	if !valid {
		return badRequest(c, "invalid patient id")
	}

	records, err := h.svc.ConsumptionsByPatient(c.Context(), patientID)
	if err != nil {
		return mapInventoryError(c, err)
	}
	return ok(c, records)
}

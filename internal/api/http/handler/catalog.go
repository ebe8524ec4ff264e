package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, catalog.ErrInvalidServiceData):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/services
func (h *CatalogHandler) List(c fiber.Ctx) error {
	services, err := h.svc.List(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, services)
}

// GET /api/services/:id
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid service id")
	}

	svc, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, svc)
}

// POST /api/services
func (h *CatalogHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Duration    int             `json:"duration"`
		Category    string          `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Create(c.Context(), catalog.CreateServiceRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Duration:    body.Duration,
		Category:    body.Category,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return created(c, svc)
}

// PATCH /api/services/:id
func (h *CatalogHandler) Update(c fiber.Ctx) error {
	id, valid := idParam(c, "id")
	if !valid {
		return badRequest(c, "invalid service id")
	}

	var body struct {
		Name        *string          `json:"name"`
		Description *string          `json:"description"`
		Price       *decimal.Decimal `json:"price"`
		Duration    *int             `json:"duration"`
		Category    *string          `json:"category"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	svc, err := h.svc.Update(c.Context(), id, catalog.UpdateServiceRequest{
		Name:        body.Name,
		Description: body.Description,
		Price:       body.Price,
		Duration:    body.Duration,
		Category:    body.Category,
	})
	if err != nil {
		return mapCatalogError(c, err)
	}

	return ok(c, svc)
}

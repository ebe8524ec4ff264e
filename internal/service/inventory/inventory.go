// Package inventory tracks clinic stock and the consumption records
// that draw it down. Consumption recording is the only write path that
// touches two collections; the store serializes the quantity decrement.
package inventory

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
	"github.com/shinewhite/clinic_backend/pkg/email"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Quantity    decimal.Decimal
	MinQuantity int64
	Unit        string
	Price       decimal.Decimal
	Category    string
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Quantity    *decimal.Decimal
	MinQuantity *int64
	Unit        *string
	Price       *decimal.Decimal
	Category    *string
}

type RecordConsumptionRequest struct {
	ItemID        int64
	AppointmentID *int64
	PatientID     *int64
	Quantity      decimal.Decimal
	UsedBy        int64
	Notes         string
}

type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*store.InventoryItem, error)
	UpdateItem(ctx context.Context, id int64, req UpdateItemRequest) (*store.InventoryItem, error)
	ListItems(ctx context.Context) ([]store.InventoryItem, error)

	// LowStock returns items whose quantity is at or below their
	// reorder threshold.
	LowStock(ctx context.Context) ([]store.InventoryItem, error)

	// RecordConsumption logs usage and decrements the item's stock.
	// A record referencing an unknown item is still kept.
	RecordConsumption(ctx context.Context, req RecordConsumptionRequest) (*store.InventoryConsumption, error)

	ConsumptionsByPatient(ctx context.Context, patientID int64) ([]store.InventoryConsumption, error)
}

type inventoryService struct {
	store  *store.Store
	mailer *email.Client
	logger *slog.Logger
}

func New(s *store.Store, mailer *email.Client, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &inventoryService{store: s, mailer: mailer, logger: logger}
}

func (s *inventoryService) CreateItem(_ context.Context, req CreateItemRequest) (*store.InventoryItem, error) {
	if req.Name == "" || req.Unit == "" {
		return nil, ErrInvalidItemData
	}

	created := s.store.CreateItem(store.InventoryItem{
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		Price:       req.Price,
		Category:    req.Category,
	})

	return &created, nil
}

func (s *inventoryService) UpdateItem(_ context.Context, id int64, req UpdateItemRequest) (*store.InventoryItem, error) {
	updated, ok := s.store.Items.Update(id, func(it store.InventoryItem) store.InventoryItem {
		if req.Name != nil {
			it.Name = *req.Name
		}
		if req.Description != nil {
			it.Description = *req.Description
		}
		if req.Quantity != nil {
			it.Quantity = *req.Quantity
		}
		if req.MinQuantity != nil {
			it.MinQuantity = *req.MinQuantity
		}
		if req.Unit != nil {
			it.Unit = *req.Unit
		}
		if req.Price != nil {
			it.Price = *req.Price
		}
		if req.Category != nil {
			it.Category = *req.Category
		}
		return it
	})
	if !ok {
		return nil, ErrItemNotFound
	}

	return &updated, nil
}

func (s *inventoryService) ListItems(_ context.Context) ([]store.InventoryItem, error) {
	return s.store.Items.List(), nil
}

func (s *inventoryService) LowStock(_ context.Context) ([]store.InventoryItem, error) {
	return s.store.Items.Filter(func(it store.InventoryItem) bool {
		return it.Quantity.Cmp(decimal.NewFromInt(it.MinQuantity)) <= 0
	}), nil
}

func (s *inventoryService) RecordConsumption(ctx context.Context, req RecordConsumptionRequest) (*store.InventoryConsumption, error) {
	if req.ItemID == 0 || !req.Quantity.IsPositive() {
		return nil, ErrInvalidConsumption
	}

	created := s.store.RecordConsumption(store.InventoryConsumption{
		ItemID:        req.ItemID,
		AppointmentID: req.AppointmentID,
		PatientID:     req.PatientID,
		Quantity:      req.Quantity,
		UsedBy:        req.UsedBy,
		Notes:         req.Notes,
	})

	s.notifyIfLow(ctx, created.ItemID)

	return &created, nil
}

func (s *inventoryService) ConsumptionsByPatient(_ context.Context, patientID int64) ([]store.InventoryConsumption, error) {
	return s.store.Consumptions.Filter(func(c store.InventoryConsumption) bool {
		return c.PatientID != nil && *c.PatientID == patientID
	}), nil
}

// notifyIfLow emails purchasing when the decrement dropped the item to
// or below its threshold. Delivery failures are logged, never surfaced
// to the caller.
func (s *inventoryService) notifyIfLow(ctx context.Context, itemID int64) {
	if s.mailer == nil || !s.mailer.IsEnabled() {
		return
	}

	it, ok := s.store.Items.Get(itemID)
	if !ok {
		return
	}
	if it.Quantity.Cmp(decimal.NewFromInt(it.MinQuantity)) > 0 {
		return
	}

	if err := s.mailer.SendLowStockAlert(ctx, it.Name, it.Quantity.String(), it.MinQuantity); err != nil {
		s.logger.Warn("low stock alert failed",
			"item", it.Name,
			"error", err,
		)
	}
}

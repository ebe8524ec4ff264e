// Package catalog manages the clinic's billable service offerings
// (cleanings, fillings, whitening and so on).
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidServiceData = errors.New("name, price and duration are required")
)

type CreateServiceRequest struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Duration    int // minutes
	Category    string
}

type UpdateServiceRequest struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Duration    *int
	Category    *string
}

type Service interface {
	Create(ctx context.Context, req CreateServiceRequest) (*store.Service, error)
	GetByID(ctx context.Context, id int64) (*store.Service, error)
	List(ctx context.Context) ([]store.Service, error)
	Update(ctx context.Context, id int64, req UpdateServiceRequest) (*store.Service, error)
}

type catalogService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &catalogService{store: s}
}

func (s *catalogService) Create(_ context.Context, req CreateServiceRequest) (*store.Service, error) {
	if req.Name == "" || req.Duration <= 0 || req.Price.IsNegative() {
		return nil, ErrInvalidServiceData
	}

	created := s.store.CreateService(store.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
	})

	return &created, nil
}

func (s *catalogService) GetByID(_ context.Context, id int64) (*store.Service, error) {
	svc, ok := s.store.Services.Get(id)
	if !ok {
		return nil, ErrServiceNotFound
	}
	return &svc, nil
}

func (s *catalogService) List(_ context.Context) ([]store.Service, error) {
	return s.store.Services.List(), nil
}

func (s *catalogService) Update(_ context.Context, id int64, req UpdateServiceRequest) (*store.Service, error) {
	updated, ok := s.store.Services.Update(id, func(svc store.Service) store.Service {
		if req.Name != nil {
			svc.Name = *req.Name
		}
		if req.Description != nil {
			svc.Description = *req.Description
		}
		if req.Price != nil {
			svc.Price = *req.Price
		}
		if req.Duration != nil {
			svc.Duration = *req.Duration
		}
		if req.Category != nil {
			svc.Category = *req.Category
		}
		return svc
	})
	if !ok {
		return nil, ErrServiceNotFound
	}

	return &updated, nil
}

// Package treatment manages multi-visit treatment plans and their
// progress tracking.
package treatment

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

var (
	ErrPlanNotFound    = errors.New("treatment plan not found")
	ErrInvalidPlanData = errors.New("patient, doctor and title are required")
)

type CreatePlanRequest struct {
	PatientID   int64
	DoctorID    int64
	Title       string
	Description string
	TotalCost   decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    int
}

type UpdatePlanRequest struct {
	PatientID   *int64
	DoctorID    *int64
	Title       *string
	Description *string
	TotalCost   *decimal.Decimal
	StartDate   *time.Time
	EndDate     *time.Time
	Progress    *int
}

type Service interface {
	Create(ctx context.Context, req CreatePlanRequest) (*store.TreatmentPlan, error)
	GetByID(ctx context.Context, id int64) (*store.TreatmentPlan, error)
	Update(ctx context.Context, id int64, req UpdatePlanRequest) (*store.TreatmentPlan, error)
	ByPatient(ctx context.Context, patientID int64) ([]store.TreatmentPlan, error)
}

type treatmentService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &treatmentService{store: s}
}

func (s *treatmentService) Create(_ context.Context, req CreatePlanRequest) (*store.TreatmentPlan, error) {
	if req.PatientID == 0 || req.DoctorID == 0 || req.Title == "" {
		return nil, ErrInvalidPlanData
	}

	created := s.store.CreatePlan(store.TreatmentPlan{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Title:       req.Title,
		Description: req.Description,
		TotalCost:   req.TotalCost,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Progress:    req.Progress,
	})

	return &created, nil
}

func (s *treatmentService) GetByID(_ context.Context, id int64) (*store.TreatmentPlan, error) {
	p, ok := s.store.Plans.Get(id)
	if !ok {
		return nil, ErrPlanNotFound
	}
	return &p, nil
}

func (s *treatmentService) Update(_ context.Context, id int64, req UpdatePlanRequest) (*store.TreatmentPlan, error) {
	updated, ok := s.store.Plans.Update(id, func(p store.TreatmentPlan) store.TreatmentPlan {
		if req.PatientID != nil {
			p.PatientID = *req.PatientID
		}
		if req.DoctorID != nil {
			p.DoctorID = *req.DoctorID
		}
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.TotalCost != nil {
			p.TotalCost = *req.TotalCost
		}
		if req.StartDate != nil {
			p.StartDate = req.StartDate
		}
		if req.EndDate != nil {
			p.EndDate = req.EndDate
		}
		if req.Progress != nil {
			p.Progress = *req.Progress
		}
		return p
	})
	if !ok {
		return nil, ErrPlanNotFound
	}

	return &updated, nil
}

func (s *treatmentService) ByPatient(_ context.Context, patientID int64) ([]store.TreatmentPlan, error) {
	return s.store.Plans.Filter(func(p store.TreatmentPlan) bool {
		return p.PatientID == patientID
	}), nil
}

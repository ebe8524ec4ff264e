package patient

import (
	"context"
	"strings"
	"time"

	"github.com/shinewhite/clinic_backend/internal/store"
)

type CreatePatientRequest struct {
	FullName    string
	PhoneNumber string
	Email       string
	Address     string
	BirthDate   *time.Time
	Notes       string
}

// UpdatePatientRequest carries a partial update; nil fields keep their
// stored value.
type UpdatePatientRequest struct {
	FullName    *string
	PhoneNumber *string
	Email       *string
	Address     *string
	BirthDate   *time.Time
	Notes       *string
}

type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (*store.Patient, error)
	GetByID(ctx context.Context, id int64) (*store.Patient, error)
	List(ctx context.Context) ([]store.Patient, error)

	// Search matches case-insensitively on the full name and by
	// substring on the phone number.
	Search(ctx context.Context, query string) ([]store.Patient, error)

	Update(ctx context.Context, id int64, req UpdatePatientRequest) (*store.Patient, error)
}

type patientService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &patientService{store: s}
}

func (s *patientService) Create(_ context.Context, req CreatePatientRequest) (*store.Patient, error) {
	if req.FullName == "" || req.PhoneNumber == "" {
		return nil, ErrInvalidPatientData
	}

	created := s.store.CreatePatient(store.Patient{
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Address:     req.Address,
		BirthDate:   req.BirthDate,
		Notes:       req.Notes,
	})

	return &created, nil
}

func (s *patientService) GetByID(_ context.Context, id int64) (*store.Patient, error) {
	p, ok := s.store.Patients.Get(id)
	if !ok {
		return nil, ErrPatientNotFound
	}
	return &p, nil
}

func (s *patientService) List(_ context.Context) ([]store.Patient, error) {
	return s.store.Patients.List(), nil
}

func (s *patientService) Search(_ context.Context, query string) ([]store.Patient, error) {
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	lower := strings.ToLower(query)
	return s.store.Patients.Filter(func(p store.Patient) bool {
		return strings.Contains(strings.ToLower(p.FullName), lower) ||
			strings.Contains(p.PhoneNumber, query)
	}), nil
}

func (s *patientService) Update(_ context.Context, id int64, req UpdatePatientRequest) (*store.Patient, error) {
	updated, ok := s.store.Patients.Update(id, func(p store.Patient) store.Patient {
		if req.FullName != nil {
			p.FullName = *req.FullName
		}
		if req.PhoneNumber != nil {
			p.PhoneNumber = *req.PhoneNumber
		}
		if req.Email != nil {
			p.Email = *req.Email
		}
		if req.Address != nil {
			p.Address = *req.Address
		}
		if req.BirthDate != nil {
			p.BirthDate = req.BirthDate
		}
		if req.Notes != nil {
			p.Notes = *req.Notes
		}
		return p
	})
	if !ok {
		return nil, ErrPatientNotFound
	}

	return &updated, nil
}

// Package finance records income and expense transactions. The type
// field is stored as sent; only "income" has special meaning, to the
// revenue aggregations.
package finance

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shinewhite/clinic_backend/internal/store"
)

var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionData = errors.New("amount, type and date are required")
)

type CreateTransactionRequest struct {
	PatientID     *int64
	AppointmentID *int64
	Amount        decimal.Decimal
	Type          string
	Category      string
	Description   string
	Date          time.Time
	CreatedBy     int64
}

type Service interface {
	Create(ctx context.Context, req CreateTransactionRequest) (*store.FinancialTransaction, error)
	GetByID(ctx context.Context, id int64) (*store.FinancialTransaction, error)
	List(ctx context.Context) ([]store.FinancialTransaction, error)
	ByPatient(ctx context.Context, patientID int64) ([]store.FinancialTransaction, error)
}

type financeService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &financeService{store: s}
}

func (s *financeService) Create(_ context.Context, req CreateTransactionRequest) (*store.FinancialTransaction, error) {
	if req.Amount.IsZero() || req.Type == "" || req.Date.IsZero() {
		return nil, ErrInvalidTransactionData
	}

	created := s.store.CreateTransaction(store.FinancialTransaction{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		Description:   req.Description,
		Date:          req.Date,
		CreatedBy:     req.CreatedBy,
	})

	return &created, nil
}

func (s *financeService) GetByID(_ context.Context, id int64) (*store.FinancialTransaction, error) {
	t, ok := s.store.Transactions.Get(id)
	if !ok {
		return nil, ErrTransactionNotFound
	}
	return &t, nil
}

func (s *financeService) List(_ context.Context) ([]store.FinancialTransaction, error) {
	return s.store.Transactions.List(), nil
}

func (s *financeService) ByPatient(_ context.Context, patientID int64) ([]store.FinancialTransaction, error) {
	return s.store.Transactions.Filter(func(t store.FinancialTransaction) bool {
		return t.PatientID != nil && *t.PatientID == patientID
	}), nil
}

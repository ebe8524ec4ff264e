// Package whatsapp records outbound patient messages and hands them to
// a delivery gateway. The message log is the source of truth; delivery
// failures are recorded, not raised.
package whatsapp

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shinewhite/clinic_backend/internal/store"
)

var ErrInvalidMessageData = errors.New("message type and body are required")

// Gateway delivers a message to a phone number. pkg/whatsapp.Client
// implements it; tests swap in fakes.
type Gateway interface {
	Send(ctx context.Context, phoneNumber, message string) error
}

type SendMessageRequest struct {
	PatientID     *int64
	AppointmentID *int64
	PhoneNumber   string
	MessageType   string
	Message       string
	SentBy        int64
}

// EnrichedMessage is a message joined with a trimmed patient record for
// the messaging screen.
type EnrichedMessage struct {
	store.WhatsappMessage
	Patient *PatientSummary `json:"patient"`
}

type PatientSummary struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

type Service interface {
	// Send records the message and attempts delivery. The record's
	// status reflects the delivery outcome.
	Send(ctx context.Context, req SendMessageRequest) (*store.WhatsappMessage, error)

	// ListEnriched returns all messages joined with their patient.
	ListEnriched(ctx context.Context) ([]EnrichedMessage, error)

	ByPatient(ctx context.Context, patientID int64) ([]store.WhatsappMessage, error)
}

type whatsappService struct {
	store   *store.Store
	gateway Gateway
	logger  *slog.Logger
}

func New(s *store.Store, gateway Gateway, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &whatsappService{store: s, gateway: gateway, logger: logger}
}

func (s *whatsappService) Send(ctx context.Context, req SendMessageRequest) (*store.WhatsappMessage, error) {
	if req.MessageType == "" || req.Message == "" {
		return nil, ErrInvalidMessageData
	}

	phone := req.PhoneNumber
	if phone == "" && req.PatientID != nil {
		if p, ok := s.store.Patients.Get(*req.PatientID); ok {
			phone = p.PhoneNumber
		}
	}

	status := store.MessageStatusSent
	if s.gateway != nil && phone != "" {
		if err := s.gateway.Send(ctx, phone, req.Message); err != nil {
			status = store.MessageStatusFailed
			s.logger.Warn("whatsapp delivery failed",
				"phone", phone,
				"error", err,
			)
		}
	}

	created := s.store.CreateMessage(store.WhatsappMessage{
		PatientID:     req.PatientID,
		AppointmentID: req.AppointmentID,
		MessageType:   req.MessageType,
		Message:       req.Message,
		Status:        status,
		SentBy:        req.SentBy,
	})

	return &created, nil
}

func (s *whatsappService) ListEnriched(_ context.Context) ([]EnrichedMessage, error) {
	messages := s.store.Messages.List()
	patients := store.NewResolver(s.store.Patients.Get)

	out := make([]EnrichedMessage, 0, len(messages))
	for _, m := range messages {
		e := EnrichedMessage{WhatsappMessage: m}
		if m.PatientID != nil {
			if p := patients.Resolve(*m.PatientID); p != nil {
				e.Patient = &PatientSummary{ID: p.ID, FullName: p.FullName, PhoneNumber: p.PhoneNumber}
			}
		}
		out = append(out, e)
	}

	return out, nil
}

func (s *whatsappService) ByPatient(_ context.Context, patientID int64) ([]store.WhatsappMessage, error) {
	return s.store.Messages.Filter(func(m store.WhatsappMessage) bool {
		return m.PatientID != nil && *m.PatientID == patientID
	}), nil
}

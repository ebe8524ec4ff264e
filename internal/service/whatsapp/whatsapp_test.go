package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/shinewhite/clinic_backend/internal/store"
)

type fakeGateway struct {
	sent []string
	err  error
}

func (f *fakeGateway) Send(_ context.Context, phone, _ string) error {
	f.sent = append(f.sent, phone)
	return f.err
}

func TestSendDeliversToPatientPhone(t *testing.T) {
	s := store.New()
	gw := &fakeGateway{}
	svc := New(s, gw, nil)
	ctx := context.Background()

	p := s.CreatePatient(store.Patient{FullName: "Ahmed", PhoneNumber: "+201001234567"})

	created, err := svc.Send(ctx, SendMessageRequest{
		PatientID:   &p.ID,
		MessageType: store.MessageTypeAppointmentReminder,
		Message:     "See you tomorrow at 10am",
		SentBy:      2,
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if created.Status != store.MessageStatusSent {
		t.Errorf("Status = %q", created.Status)
	}
	if created.SentAt.IsZero() {
		t.Error("SentAt not stamped")
	}
	if len(gw.sent) != 1 || gw.sent[0] != "+201001234567" {
		t.Errorf("gateway calls = %v", gw.sent)
	}
}

func TestSendRecordsFailure(t *testing.T) {
	s := store.New()
	gw := &fakeGateway{err: errors.New("gateway down")}
	svc := New(s, gw, nil)
	ctx := context.Background()

	p := s.CreatePatient(store.Patient{FullName: "Ahmed", PhoneNumber: "0100"})

	created, err := svc.Send(ctx, SendMessageRequest{
		PatientID:   &p.ID,
		MessageType: store.MessageTypeFollowup,
		Message:     "How are you feeling?",
	})
	if err != nil {
		t.Fatalf("Send should not fail when delivery fails: %v", err)
	}
	if created.Status != store.MessageStatusFailed {
		t.Errorf("Status = %q, want failed", created.Status)
	}
	if s.Messages.Len() != 1 {
		t.Error("message not recorded")
	}
}

func TestSendWithoutPatient(t *testing.T) {
	s := store.New()
	gw := &fakeGateway{}
	svc := New(s, gw, nil)
	ctx := context.Background()

	created, err := svc.Send(ctx, SendMessageRequest{
		PhoneNumber: "+201112223334",
		MessageType: store.MessageTypePaymentReminder,
		Message:     "Your balance is due",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if created.PatientID != nil {
		t.Errorf("PatientID = %v, want nil", created.PatientID)
	}
	if len(gw.sent) != 1 {
		t.Errorf("gateway calls = %v", gw.sent)
	}
}

func TestSendValidation(t *testing.T) {
	svc := New(store.New(), &fakeGateway{}, nil)
	ctx := context.Background()

	if _, err := svc.Send(ctx, SendMessageRequest{Message: "x"}); !errors.Is(err, ErrInvalidMessageData) {
		t.Errorf("missing type: got %v", err)
	}
	if _, err := svc.Send(ctx, SendMessageRequest{MessageType: "followup"}); !errors.Is(err, ErrInvalidMessageData) {
		t.Errorf("missing body: got %v", err)
	}
}

func TestByPatient(t *testing.T) {
	s := store.New()
	svc := New(s, nil, nil)
	ctx := context.Background()

	p1, p2 := int64(1), int64(2)
	s.CreateMessage(store.WhatsappMessage{PatientID: &p1, MessageType: "followup", Message: "a", Status: "sent"})
	s.CreateMessage(store.WhatsappMessage{PatientID: &p2, MessageType: "followup", Message: "b", Status: "sent"})
	s.CreateMessage(store.WhatsappMessage{PatientID: &p1, MessageType: "followup", Message: "c", Status: "sent"})

	got, err := svc.ByPatient(ctx, p1)
	if err != nil {
		t.Fatalf("ByPatient: %v", err)
	}
	if len(got) != 2 || got[0].Message != "a" || got[1].Message != "c" {
		t.Errorf("unexpected messages %+v", got)
	}
}

func TestListEnriched(t *testing.T) {
	s := store.New()
	svc := New(s, nil, nil)
	ctx := context.Background()

	p := s.CreatePatient(store.Patient{FullName: "Fatma", PhoneNumber: "0111"})
	dangling := int64(42)

	s.CreateMessage(store.WhatsappMessage{PatientID: &p.ID, MessageType: "followup", Message: "a", Status: "sent"})
	s.CreateMessage(store.WhatsappMessage{PatientID: &dangling, MessageType: "followup", Message: "b", Status: "sent"})
	s.CreateMessage(store.WhatsappMessage{MessageType: "followup", Message: "c", Status: "sent"})

	got, err := svc.ListEnriched(ctx)
	if err != nil {
		t.Fatalf("ListEnriched: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d messages, want 3", len(got))
	}
	if got[0].Patient == nil || got[0].Patient.FullName != "Fatma" {
		t.Errorf("patient join missing: %+v", got[0].Patient)
	}
	if got[1].Patient != nil {
		t.Errorf("dangling patient should be nil, got %+v", got[1].Patient)
	}
	if got[2].Patient != nil {
		t.Errorf("absent patient should be nil, got %+v", got[2].Patient)
	}
}

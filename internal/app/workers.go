package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/shinewhite/clinic_backend/internal/service/appointment"
	whatsappsvc "github.com/shinewhite/clinic_backend/internal/service/whatsapp"
	"github.com/shinewhite/clinic_backend/internal/store"
	whatsapppkg "github.com/shinewhite/clinic_backend/pkg/whatsapp"
)

// WorkerModule registers background workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Gateway     *whatsapppkg.Client
	Appointment appointment.Service
	Whatsapp    whatsappsvc.Service
}

func RegisterWorkers(p WorkerParams) {
	if p.Gateway == nil || !p.Gateway.IsEnabled() {
		slog.Info("reminder_worker: whatsapp gateway disabled, not starting")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	p.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go runReminderWorker(ctx, p.Appointment, p.Whatsapp)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

// runReminderWorker sends each patient a WhatsApp reminder the day
// before their appointment. Appointments are rechecked hourly so
// late bookings still get one.
func runReminderWorker(ctx context.Context, appts appointment.Service, wa whatsappsvc.Service) {
	slog.Info("reminder_worker: started")

	reminded := make(map[int64]struct{})
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		sendReminders(ctx, appts, wa, reminded)

		select {
		case <-ctx.Done():
			slog.Info("reminder_worker: stopped")
			return
		case <-ticker.C:
		}
	}
}

func sendReminders(ctx context.Context, appts appointment.Service, wa whatsappsvc.Service, reminded map[int64]struct{}) {
	tomorrow := time.Now().AddDate(0, 0, 1)

	list, err := appts.ByDate(ctx, tomorrow)
	if err != nil {
		slog.Warn("reminder_worker: listing appointments failed", "err", err)
		return
	}

	for _, appt := range list {
		if _, done := reminded[appt.ID]; done {
			continue
		}
		if appt.Status == store.StatusCancelled {
			continue
		}

		patientID := appt.PatientID
		_, err := wa.Send(ctx, whatsappsvc.SendMessageRequest{
			PatientID:     &patientID,
			AppointmentID: &appt.ID,
			MessageType:   store.MessageTypeAppointmentReminder,
			Message: fmt.Sprintf("Reminder: you have an appointment tomorrow at %s.",
				appt.StartTime.Format("15:04")),
			SentBy: appt.CreatedBy,
		})
		if err != nil {
			slog.Warn("reminder_worker: send failed", "appointment_id", appt.ID, "err", err)
			continue
		}
		reminded[appt.ID] = struct{}{}
	}
}

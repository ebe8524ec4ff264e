package appointment

import (
	"context"
	"time"

	"github.com/shinewhite/clinic_backend/internal/store"
)

type CreateAppointmentRequest struct {
	PatientID int64
	DoctorID  int64
	ServiceID *int64
	StartTime time.Time
	EndTime   time.Time
	Status    store.AppointmentStatus
	Notes     string
	CreatedBy int64
}

type UpdateAppointmentRequest struct {
	PatientID *int64
	DoctorID  *int64
	ServiceID *int64
	StartTime *time.Time
	EndTime   *time.Time
	Status    *store.AppointmentStatus
	Notes     *string
}

// DoctorSummary and ServiceSummary are the trimmed projections embedded
// in the schedule view; the full records carry fields the schedule does
// not need.
type DoctorSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
}

type ServiceSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EnrichedAppointment is an appointment joined with its referenced
// records. Dangling references leave the field null rather than failing
// the whole view.
type EnrichedAppointment struct {
	store.Appointment
	Patient *store.Patient  `json:"patient"`
	Doctor  *DoctorSummary  `json:"doctor"`
	Service *ServiceSummary `json:"service"`
}

type Service interface {
	Create(ctx context.Context, req CreateAppointmentRequest) (*store.Appointment, error)
	GetByID(ctx context.Context, id int64) (*store.Appointment, error)
	Update(ctx context.Context, id int64, req UpdateAppointmentRequest) (*store.Appointment, error)
	List(ctx context.Context) ([]store.Appointment, error)
	ByDate(ctx context.Context, date time.Time) ([]store.Appointment, error)
	ByDoctor(ctx context.Context, doctorID int64) ([]store.Appointment, error)
	ByPatient(ctx context.Context, patientID int64) ([]store.Appointment, error)

	// TodayEnriched returns appointments starting today joined with
	// their patient, doctor and service records.
	TodayEnriched(ctx context.Context) ([]EnrichedAppointment, error)
}

type appointmentService struct {
	store *store.Store
}

func New(s *store.Store) Service {
	return &appointmentService{store: s}
}

func (s *appointmentService) Create(_ context.Context, req CreateAppointmentRequest) (*store.Appointment, error) {
	if req.PatientID == 0 || req.DoctorID == 0 || req.StartTime.IsZero() || req.EndTime.IsZero() || req.EndTime.Before(req.StartTime) {
		return nil, ErrInvalidAppointmentData
	}

	status := req.Status
	if status == "" {
		status = store.StatusPending
	}

	created := s.store.CreateAppointment(store.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    status,
		Notes:     req.Notes,
		CreatedBy: req.CreatedBy,
	})

	return &created, nil
}

func (s *appointmentService) Update(_ context.Context, id int64, req UpdateAppointmentRequest) (*store.Appointment, error) {
	updated, ok := s.store.Appointments.Update(id, func(a store.Appointment) store.Appointment {
		if req.PatientID != nil {
			a.PatientID = *req.PatientID
		}
		if req.DoctorID != nil {
			a.DoctorID = *req.DoctorID
		}
		if req.ServiceID != nil {
			a.ServiceID = req.ServiceID
		}
		if req.StartTime != nil {
			a.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			a.EndTime = *req.EndTime
		}
		if req.Status != nil {
			a.Status = *req.Status
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}
		return a
	})
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	return &updated, nil
}

func (s *appointmentService) GetByID(_ context.Context, id int64) (*store.Appointment, error) {
	a, ok := s.store.Appointments.Get(id)
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return &a, nil
}

func (s *appointmentService) List(_ context.Context) ([]store.Appointment, error) {
	return s.store.Appointments.List(), nil
}

// ByDate returns appointments whose start falls on the given calendar
// day, in the date's location.
func (s *appointmentService) ByDate(_ context.Context, date time.Time) ([]store.Appointment, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	return s.store.Appointments.Filter(func(a store.Appointment) bool {
		return !a.StartTime.Before(dayStart) && a.StartTime.Before(dayEnd)
	}), nil
}

func (s *appointmentService) ByDoctor(_ context.Context, doctorID int64) ([]store.Appointment, error) {
	return s.store.Appointments.Filter(func(a store.Appointment) bool {
		return a.DoctorID == doctorID
	}), nil
}

func (s *appointmentService) ByPatient(_ context.Context, patientID int64) ([]store.Appointment, error) {
	return s.store.Appointments.Filter(func(a store.Appointment) bool {
		return a.PatientID == patientID
	}), nil
}

func (s *appointmentService) TodayEnriched(ctx context.Context) ([]EnrichedAppointment, error) {
	todays, err := s.ByDate(ctx, s.store.Now())
	if err != nil {
		return nil, err
	}

	patients := store.NewResolver(s.store.Patients.Get)
	doctors := store.NewResolver(s.store.Users.Get)
	services := store.NewResolver(s.store.Services.Get)

	out := make([]EnrichedAppointment, 0, len(todays))
	for _, a := range todays {
		e := EnrichedAppointment{
			Appointment: a,
			Patient:     patients.Resolve(a.PatientID),
		}
		if d := doctors.Resolve(a.DoctorID); d != nil {
			e.Doctor = &DoctorSummary{ID: d.ID, FullName: d.FullName}
		}
		if a.ServiceID != nil {
			if svc := services.Resolve(*a.ServiceID); svc != nil {
				e.Service = &ServiceSummary{ID: svc.ID, Name: svc.Name}
			}
		}
		out = append(out, e)
	}

	return out, nil
}

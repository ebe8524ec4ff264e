package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a staff account role. Route access is derived from it.
type Role string

const (
	RoleManager   Role = "manager"
	RoleDoctor    Role = "doctor"
	RoleSecretary Role = "secretary"
	RoleNurse     Role = "nurse"
)

// AppointmentStatus is the lifecycle state of an appointment. The store
// accepts any value; only the three known states are counted by analytics.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
)

// WhatsApp message conventions. MessageType and message status are stored as
// free text; these constants are the values the UI sends.
const (
	MessageTypeAppointmentReminder = "appointment_reminder"
	MessageTypeFollowup            = "followup"
	MessageTypePaymentReminder     = "payment_reminder"

	MessageStatusSent      = "sent"
	MessageStatusDelivered = "delivered"
	MessageStatusRead      = "read"
	MessageStatusFailed    = "failed"
)

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"-"`
	FullName    string    `json:"fullName"`
	Role        Role      `json:"role"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Patient struct {
	ID          int64      `json:"id"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber"`
	Email       string     `json:"email,omitempty"`
	Address     string     `json:"address,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Service is a catalog entry (a billable clinic service), not to be confused
// with the application services in internal/service.
type Service struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Duration    int             `json:"duration"` // minutes
	Category    string          `json:"category,omitempty"`
}

// InventoryItem tracks stock. Quantity is decimal so that fractional
// consumption decrements stay exact; no floor is enforced, it may go negative.
type InventoryItem struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinQuantity int64           `json:"minQuantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category,omitempty"`
}

type Appointment struct {
	ID        int64             `json:"id"`
	PatientID int64             `json:"patientId"`
	DoctorID  int64             `json:"doctorId"`
	ServiceID *int64            `json:"serviceId,omitempty"`
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedBy int64             `json:"createdBy"`
	CreatedAt time.Time         `json:"createdAt"`
}

type TreatmentPlan struct {
	ID          int64           `json:"id"`
	PatientID   int64           `json:"patientId"`
	DoctorID    int64           `json:"doctorId"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	StartDate   *time.Time      `json:"startDate,omitempty"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Progress    int             `json:"progress"` // 0-100, not clamped here
	CreatedAt   time.Time       `json:"createdAt"`
}

// FinancialTransaction type is stored as free text; analytics only
// looks at the "income" value.
type FinancialTransaction struct {
	ID            int64           `json:"id"`
	PatientID     *int64          `json:"patientId,omitempty"`
	AppointmentID *int64          `json:"appointmentId,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"` // income | expense
	Category      string          `json:"category,omitempty"`
	Description   string          `json:"description,omitempty"`
	Date          time.Time       `json:"date"`
	CreatedBy     int64           `json:"createdBy"`
}

type InventoryConsumption struct {
	ID            int64           `json:"id"`
	ItemID        int64           `json:"itemId"`
	AppointmentID *int64          `json:"appointmentId,omitempty"`
	PatientID     *int64          `json:"patientId,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	UsedBy        int64           `json:"usedBy"`
	UsedAt        time.Time       `json:"usedAt"`
	Notes         string          `json:"notes,omitempty"`
}

type WhatsappMessage struct {
	ID            int64     `json:"id"`
	PatientID     *int64    `json:"patientId,omitempty"`
	AppointmentID *int64    `json:"appointmentId,omitempty"`
	MessageType   string    `json:"messageType"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	SentAt        time.Time `json:"sentAt"`
	SentBy        int64     `json:"sentBy"`
}

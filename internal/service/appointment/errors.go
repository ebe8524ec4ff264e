package appointment

import "errors"

var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentData = errors.New("patient, doctor and a valid time range are required")
)

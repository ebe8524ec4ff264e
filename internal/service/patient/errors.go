package patient

import "errors"

var (
	ErrPatientNotFound    = errors.New("patient not found")
	ErrInvalidPatientData = errors.New("full name and phone number are required")
	ErrEmptySearchQuery   = errors.New("search query is required")
)

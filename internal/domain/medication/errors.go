package medication

import "errors"

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrLogNotFound        = errors.New("medication log not found")
	ErrNameRequired       = errors.New("medication name is required")
	ErrInvalidDoseTime    = errors.New("dose times must be in HH:MM format")
	ErrInvalidDateRange   = errors.New("end date cannot be before start date")
)

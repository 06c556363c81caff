package appointment

import "errors"

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrInvalidStatusTransition = errors.New("invalid appointment status transition")
	ErrInvalidDuration         = errors.New("appointment duration must be between 5 and 480 minutes")
	ErrTitleRequired           = errors.New("appointment title is required")
	ErrDateRequired            = errors.New("appointment date is required")
)

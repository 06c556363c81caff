package appointment

import (
	"context"
)

type Repository interface {
	// Create persists a new appointment.
	Create(ctx context.Context, a *Appointment) error

	// GetByID retrieves an appointment by primary key. Returns ErrAppointmentNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Appointment, error)

	// Update applies partial updates to an existing appointment.
	Update(ctx context.Context, id uint, cmd *UpdateAppointmentCommand) (*Appointment, error)

	// UpdateStatus persists a status transition already applied to a.
	UpdateStatus(ctx context.Context, a *Appointment) error

	// SoftDelete marks the appointment as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// List returns a paginated, filtered list of appointments, soonest first.
	List(ctx context.Context, q *ListAppointmentsQuery) (*PagedAppointments, error)
}

package medication

import (
	"context"
)

type Repository interface {
	// Create persists a new medication.
	Create(ctx context.Context, m *Medication) error

	// GetByID retrieves a medication by primary key. Returns ErrMedicationNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Medication, error)

	// Update applies partial updates to an existing medication.
	Update(ctx context.Context, id uint, cmd *UpdateMedicationCommand) (*Medication, error)

	// SoftDelete marks the medication as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// ListByUser returns a user's medications, optionally only active ones.
	ListByUser(ctx context.Context, userID uint, activeOnly bool) ([]*Medication, error)
}

type LogRepository interface {
	// Create persists one dose occurrence.
	Create(ctx context.Context, l *Log) error

	// GetByID retrieves a log entry. Returns ErrLogNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Log, error)

	// List returns a paginated, filtered list of dose logs, newest first.
	List(ctx context.Context, q *ListLogsQuery) (*PagedLogs, error)
}

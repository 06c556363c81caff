package exercise

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new exercise log.
	Create(ctx context.Context, l *Log) error

	// GetByID retrieves a log by primary key. Returns ErrLogNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Log, error)

	// Update applies partial updates to an existing log.
	Update(ctx context.Context, id uint, cmd *UpdateLogCommand) (*Log, error)

	// SoftDelete marks the log as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// List returns a paginated, filtered list of logs, newest first.
	List(ctx context.Context, q *ListLogsQuery) (*PagedLogs, error)

	// ListByDate returns all of a user's logs inside the optional inclusive
	// [from, to] window, sorted by date ascending, for the aggregation engine.
	ListByDate(ctx context.Context, userID uint, from, to *time.Time) ([]Log, error)
}

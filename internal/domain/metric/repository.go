package metric

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new metric reading.
	Create(ctx context.Context, m *HealthMetric) error

	// GetByID retrieves a reading by primary key. Returns ErrMetricNotFound if not found.
	GetByID(ctx context.Context, id uint) (*HealthMetric, error)

	// Update applies partial updates to an existing reading.
	Update(ctx context.Context, id uint, cmd *UpdateMetricCommand) (*HealthMetric, error)

	// SoftDelete marks the reading as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// List returns a paginated, filtered list of readings, newest first.
	List(ctx context.Context, q *ListMetricsQuery) (*PagedMetrics, error)

	// ListByType returns all of a user's readings of one type inside the
	// optional inclusive [from, to] window, sorted by date ascending. This
	// is the feed for the aggregation engine.
	ListByType(ctx context.Context, userID uint, t Type, from, to *time.Time) ([]HealthMetric, error)
}

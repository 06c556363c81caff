package goal

import (
	"context"
)

type Repository interface {
	// Create persists a new goal.
	Create(ctx context.Context, g *Goal) error

	// GetByID retrieves a goal by primary key. Returns ErrGoalNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Goal, error)

	// Update applies partial updates, including the recomputed progress.
	Update(ctx context.Context, g *Goal) error

	// SoftDelete marks the goal as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// List returns a paginated, filtered list of goals.
	List(ctx context.Context, q *ListGoalsQuery) (*PagedGoals, error)
}

package meal

import (
	"context"
	"time"
)

type Repository interface {
	// Create persists a new meal.
	Create(ctx context.Context, m *Meal) error

	// GetByID retrieves a meal by primary key. Returns ErrMealNotFound if not found.
	GetByID(ctx context.Context, id uint) (*Meal, error)

	// Update applies partial updates to an existing meal.
	Update(ctx context.Context, id uint, cmd *UpdateMealCommand) (*Meal, error)

	// SoftDelete marks the meal as deleted.
	SoftDelete(ctx context.Context, id uint) error

	// List returns a paginated, filtered list of meals, newest first.
	List(ctx context.Context, q *ListMealsQuery) (*PagedMeals, error)

	// ListByDate returns all of a user's meals inside the optional
	// inclusive [from, to] window, sorted by date ascending, for the
	// aggregation engine.
	ListByDate(ctx context.Context, userID uint, from, to *time.Time) ([]Meal, error)
}

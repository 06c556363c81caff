package goal

import "errors"

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrTitleRequired    = errors.New("goal title is required")
	ErrCategoryRequired = errors.New("goal category is required")
)

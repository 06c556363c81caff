package meal

import "errors"

var (
	ErrMealNotFound     = errors.New("meal not found")
	ErrInvalidMealType  = errors.New("invalid meal type")
	ErrNameRequired     = errors.New("meal name is required")
	ErrNegativeNutrient = errors.New("nutrient values cannot be negative")
)

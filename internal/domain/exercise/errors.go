package exercise

import "errors"

var (
	ErrLogNotFound     = errors.New("exercise log not found")
	ErrTypeRequired    = errors.New("exercise type is required")
	ErrInvalidDuration = errors.New("exercise duration must be positive")
)

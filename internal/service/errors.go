package service

import (
	"errors"
	"strings"
)

var (
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("an account with this email already exists")
)

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

type AuditEntry struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   string
	IPAddress    string
	RequestID    string
	StatusCode   int
	Changes      string
}

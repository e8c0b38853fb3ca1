package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUserExists is returned when a registration collides with an existing
	// username or email, whether caught by the pre-check or by the store's
	// unique constraint.
	ErrUserExists = errors.New("username or email already exists")

	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned when credentials are correct but the
	// account has been deactivated.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrAuthRequired is returned when an operation needs an authenticated
	// identity and none is present.
	ErrAuthRequired = errors.New("authentication required")

	ErrUserNotFound  = errors.New("user not found")
	ErrMediaNotFound = errors.New("media not found")
	ErrForbidden     = errors.New("insufficient permissions")
)

// ValidationError carries per-field messages for malformed input. It is
// recovered locally at the request boundary and never reaches storage.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

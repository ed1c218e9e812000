// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Not-found errors
	ErrLabNotFound       = errors.New("lab not found")
	ErrProjectNotFound   = errors.New("project not found")
	ErrPersonnelNotFound = errors.New("personnel not found")
)

// ValidationError reports missing or malformed input fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(e.Fields, ", "))
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ConflictError reports a unique-constraint collision.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// IntegrityError reports a foreign-key violation on insert or delete.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string { return e.Message }

// IsNotFound reports whether err is one of the entity not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrLabNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrPersonnelNotFound)
}

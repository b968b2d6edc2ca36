package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for config operations
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrRequired      = errors.New("value is required")
	ErrInvalidURL    = errors.New("not an absolute http(s) URL")
	ErrNotPositive   = errors.New("must be positive")
	ErrDuplicateName = errors.New("duplicate name")
)

// ValidationErrors holds multiple validation errors
type ValidationErrors struct {
	Errors []error
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

func (e *ValidationErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (e *ValidationErrors) Unwrap() []error {
	return e.Errors
}

// FieldError represents a validation error for a specific field
type FieldError struct {
	Section string // Section name, e.g. "allergies[1]"
	Field   string // Field name
	Value   string // Invalid value
	Err     error  // Underlying error
}

func (e *FieldError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("field %s (%s): %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: field %s (%s): %v", e.Section, e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a new FieldError
func NewFieldError(section, field, value string, err error) *FieldError {
	return &FieldError{
		Section: section,
		Field:   field,
		Value:   value,
		Err:     err,
	}
}

// Package errors provides sentinel errors and the detail error type used
// for actionable CLI messages.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrInvalidInput indicates a user-supplied value the CLI cannot use.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPrecondition indicates the target directory failed a validation
	// gate before any mutation.
	ErrPrecondition = errors.New("precondition failed")

	// ErrConfig indicates an unreadable or invalid configuration file.
	ErrConfig = errors.New("config error")
)

// DetailError carries the message, the offending location, and an
// actionable hint for one failure.
type DetailError struct {
	// Message is the specific description (required).
	Message string

	// Location is the path the error refers to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error, usually a sentinel (optional).
	Cause error
}

// Error renders a single actionable line.
func (e *DetailError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Location != "" {
		b.WriteString(": ")
		b.WriteString(e.Location)
	}
	if e.Hint != "" {
		b.WriteString(" (")
		b.WriteString(e.Hint)
		b.WriteString(")")
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewInvalidInputError creates an invalid-input error with a hint.
func NewInvalidInputError(message, hint string) error {
	return &DetailError{
		Message: message,
		Hint:    hint,
		Cause:   ErrInvalidInput,
	}
}

// NewPreconditionError creates a failed-precondition error naming the
// location that was checked.
func NewPreconditionError(message, location, hint string) error {
	return &DetailError{
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrPrecondition,
	}
}

// NewConfigError creates a configuration error for a file.
func NewConfigError(message, location string, cause error) error {
	wrapped := error(ErrConfig)
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrConfig, cause)
	}
	return &DetailError{
		Message:  message,
		Location: location,
		Cause:    wrapped,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

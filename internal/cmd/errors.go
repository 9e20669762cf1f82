package cmd

import (
	"errors"

	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/naming"
	"github.com/act-operator/cli/internal/project"
	"github.com/act-operator/cli/internal/scaffold"
	"github.com/act-operator/cli/internal/templates"
)

// ExitError wraps an error with an explicit exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates an ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError maps an error to its exit code. Every error kind of
// the pipeline has a distinct code; anything unclassified is a general
// error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var invalidErr *project.InvalidError
	var renderErr *templates.RenderError
	var normErr *scaffold.NormalizeError

	switch {
	case errors.Is(err, naming.ErrEmptyName),
		errors.Is(err, naming.ErrReservedName),
		errors.Is(err, oerrors.ErrInvalidInput):
		return ExitInvalidName
	case errors.As(err, &invalidErr),
		errors.Is(err, oerrors.ErrPrecondition):
		return ExitPrecondition
	case errors.As(err, &renderErr):
		return ExitRenderError
	case errors.As(err, &normErr):
		return ExitNormalizeError
	case errors.Is(err, oerrors.ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneralError
	}
}

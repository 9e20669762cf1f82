// Package templates provides the act template sources, their manifests, and
// the tree engine that materializes them. The scaffolding pipeline treats
// this package as an external collaborator: it hands over a flat string map
// and a destination, and receives a directory tree or a RenderError.
package templates

import "fmt"

// RenderErrorKind classifies failures at the template engine boundary.
type RenderErrorKind string

const (
	// ErrKindTemplateNotFound means the template source or subtree is missing.
	ErrKindTemplateNotFound RenderErrorKind = "template not found"

	// ErrKindMissingKey means a placeholder was referenced but absent from
	// the context.
	ErrKindMissingKey RenderErrorKind = "missing placeholder"

	// ErrKindTargetUnwritable means the destination could not be written.
	ErrKindTargetUnwritable RenderErrorKind = "target unwritable"

	// ErrKindEngine covers template parse and execution failures.
	ErrKindEngine RenderErrorKind = "engine failure"
)

// RenderError is the single error type crossing the engine boundary.
type RenderError struct {
	Kind   RenderErrorKind
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("render failed (%s)", e.Kind)
	}
	return fmt.Sprintf("render failed (%s): %s", e.Kind, e.Detail)
}

// Unwrap returns the underlying cause, if any.
func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(kind RenderErrorKind, detail string, err error) *RenderError {
	return &RenderError{Kind: kind, Detail: detail, Err: err}
}

// Package project validates act project directories and maintains the
// registry files a rendered act carries (langgraph.json, pyproject.toml).
package project

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Mode selects the validation question being asked.
type Mode int

const (
	// ForCreate asks whether a path is safe to scaffold into.
	ForCreate Mode = iota

	// ForExtend asks whether a path holds a valid act project.
	ForExtend
)

// Kind tags a validation outcome.
type Kind int

const (
	// Empty means the path is absent or an empty directory.
	Empty Kind = iota

	// ValidProject means every signature path is present.
	ValidProject

	// Invalid means the path is neither empty nor a recognizable project.
	Invalid
)

// Result is the tagged outcome of a validation. Callers branch on Kind;
// Reason is set only for Invalid.
type Result struct {
	Kind   Kind
	Reason string
}

// InvalidError carries an Invalid outcome as an error so pipeline stages
// can abort on it.
type InvalidError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidError) Error() string {
	return e.Reason
}

// Err converts an Invalid result into an InvalidError, or nil otherwise.
func (r Result) Err() error {
	if r.Kind != Invalid {
		return nil
	}
	return &InvalidError{Reason: r.Reason}
}

// DefaultChecklist lists the relative paths whose presence marks a
// directory as a valid act project.
var DefaultChecklist = []string{
	"pyproject.toml",
	"langgraph.json",
	"casts",
	"casts/base_node.py",
	"casts/base_graph.py",
}

// Validator checks candidate directories against a signature checklist.
type Validator struct {
	checklist []string
}

// NewValidator returns a Validator using checklist, or DefaultChecklist
// when checklist is empty.
func NewValidator(checklist []string) *Validator {
	if len(checklist) == 0 {
		checklist = DefaultChecklist
	}
	return &Validator{checklist: checklist}
}

// Validate probes path read-only and reports its state for the given mode.
// Unexpected I/O failures are returned as a Go error, distinct from the
// semantic Invalid outcome.
func (v *Validator) Validate(path string, mode Mode) (Result, error) {
	switch mode {
	case ForCreate:
		return v.validateForCreate(path)
	case ForExtend:
		return v.validateForExtend(path)
	default:
		return Result{}, fmt.Errorf("unknown validation mode %d", mode)
	}
}

func (v *Validator) validateForCreate(path string) (Result, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Result{Kind: Empty}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("probing %s: %w", path, err)
	}

	if !info.IsDir() {
		return Result{Kind: Invalid, Reason: fmt.Sprintf("target %s exists and is not a directory", path)}, nil
	}

	empty, err := dirIsEmpty(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if !empty {
		return Result{Kind: Invalid, Reason: "target directory is not empty"}, nil
	}
	return Result{Kind: Empty}, nil
}

func (v *Validator) validateForExtend(path string) (Result, error) {
	for _, rel := range v.checklist {
		_, err := os.Stat(filepath.Join(path, rel))
		if os.IsNotExist(err) {
			return Result{Kind: Invalid, Reason: "missing: " + rel}, nil
		}
		if err != nil {
			return Result{}, fmt.Errorf("probing %s: %w", filepath.Join(path, rel), err)
		}
	}
	return Result{Kind: ValidProject}, nil
}

// dirIsEmpty reports whether a directory has no entries.
func dirIsEmpty(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}

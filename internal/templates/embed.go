package templates

import (
	"embed"
	"fmt"
	"io/fs"
)

// The all: prefix is required because the act tree contains entries whose
// names start with underscores and dots.
//
//go:embed all:act
var actFS embed.FS

// Embedded returns the act template compiled into the binary.
func Embedded() (Source, error) {
	sub, err := fs.Sub(actFS, "act")
	if err != nil {
		return Source{}, fmt.Errorf("opening embedded template: %w", err)
	}
	return Source{FS: sub, Name: "embedded:act"}, nil
}

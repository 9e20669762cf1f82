package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/act-operator/cli/internal/naming"
)

// NormalizeError reports a failure during the post-render rename pass.
// The walk aborts on the first failure; renames already performed are kept
// and surfaced rather than rolled back.
type NormalizeError struct {
	// Kind classifies the failure ("collision" or "rename").
	Kind string

	// Path is the directory the failure occurred on.
	Path string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *NormalizeError) Error() string {
	if e.Kind == "collision" {
		return fmt.Sprintf("normalize collision: %s already has a sibling with its snake_case name", e.Path)
	}
	return fmt.Sprintf("normalize %s: %s", e.Kind, e.Path)
}

// Unwrap returns the underlying cause.
func (e *NormalizeError) Unwrap() error {
	return e.Err
}

// Rename records one directory rename performed by Normalize.
type Rename struct {
	// From is the directory's previous path relative to the walked root.
	From string

	// To is the new path relative to the walked root.
	To string
}

// Normalize walks the rendered tree under root and renames every directory
// that should be an ecosystem identifier but is not in snake_case form.
// The identifier predicate is "direct child of the components directory":
// those names become Python package names, so the engine's slug output is
// reconciled to Resolve(name).Snake.
//
// The walk is bottom-up (deepest first) so a parent rename can never
// invalidate a child path computed earlier. A rename whose snake target
// already exists as a sibling aborts with a collision NormalizeError.
// Returns the renames performed, also on error.
func Normalize(root, componentsDir string) ([]Rename, error) {
	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && isComponentDir(root, componentsDir, path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, &NormalizeError{Kind: "walk", Path: root, Err: err}
	}

	return renameToSnake(root, candidates)
}

// NormalizeDir runs the rename pass on a single components-dir child,
// leaving its siblings untouched. A missing or non-directory path is a
// no-op.
func NormalizeDir(root, componentsDir, name string) ([]Rename, error) {
	path := filepath.Join(root, componentsDir, name)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &NormalizeError{Kind: "walk", Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, nil
	}
	return renameToSnake(root, []string{path})
}

// renameToSnake renames each candidate directory to its snake_case form.
func renameToSnake(root string, candidates []string) ([]Rename, error) {
	// Deepest paths first.
	sort.Slice(candidates, func(i, j int) bool {
		return strings.Count(candidates[i], string(filepath.Separator)) >
			strings.Count(candidates[j], string(filepath.Separator))
	})

	var renames []Rename
	for _, path := range candidates {
		name := filepath.Base(path)
		v, err := naming.Resolve(name)
		if err != nil {
			// Nothing derivable from the name; leave it for the user.
			continue
		}
		if v.Snake == name {
			continue
		}

		target := filepath.Join(filepath.Dir(path), v.Snake)
		if _, err := os.Stat(target); err == nil {
			return renames, &NormalizeError{Kind: "collision", Path: path}
		}
		if err := os.Rename(path, target); err != nil {
			return renames, &NormalizeError{Kind: "rename", Path: path, Err: err}
		}

		from, _ := filepath.Rel(root, path)
		to, _ := filepath.Rel(root, target)
		renames = append(renames, Rename{From: from, To: to})
	}
	return renames, nil
}

// isComponentDir reports whether path is a direct child of root's
// components directory.
func isComponentDir(root, componentsDir, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	return len(parts) == 2 && parts[0] == componentsDir
}

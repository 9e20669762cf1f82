package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/act-operator/cli/internal/templates"
)

// Renderer adapts the template engine to the pipeline: it stages every
// render in a temporary directory next to the target and moves the result
// into place with a single rename, so a failed or interrupted render never
// leaves partial output at the target path.
//
// The renderer trusts that the caller has already validated the target; it
// does not re-check emptiness.
type Renderer struct {
	engine templates.Engine
}

// NewRenderer returns a Renderer delegating to engine.
func NewRenderer(engine templates.Engine) *Renderer {
	return &Renderer{engine: engine}
}

// Render materializes the subtree of src at targetPath. The staging
// directory is created in targetPath's parent so the final rename stays on
// one filesystem. On failure the staging directory is removed and
// targetPath is untouched. Returns the rendered file paths relative to
// targetPath.
func (r *Renderer) Render(src templates.Source, subtree string, vars map[string]string, targetPath string) ([]string, error) {
	parent := filepath.Dir(targetPath)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, &templates.RenderError{
			Kind:   templates.ErrKindTargetUnwritable,
			Detail: parent,
			Err:    err,
		}
	}

	staging, err := os.MkdirTemp(parent, ".actop-staging-*")
	if err != nil {
		return nil, &templates.RenderError{
			Kind:   templates.ErrKindTargetUnwritable,
			Detail: parent,
			Err:    err,
		}
	}
	defer os.RemoveAll(staging)

	rendered, files, err := r.engine.Render(src, subtree, vars, staging)
	if err != nil {
		return nil, err
	}

	if err := os.Rename(rendered, targetPath); err != nil {
		return nil, &templates.RenderError{
			Kind:   templates.ErrKindTargetUnwritable,
			Detail: fmt.Sprintf("moving rendered tree to %s", targetPath),
			Err:    err,
		}
	}
	return files, nil
}

package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act-operator/cli/internal/templates"
)

func smallSource() templates.Source {
	return templates.Source{
		Name: "test:small",
		FS: fstest.MapFS{
			"__act_slug__/README.md.tmpl":  {Data: []byte("# {{.act_name}}\n")},
			"__act_slug__/static.txt":      {Data: []byte("untouched\n")},
			"__act_slug__/casts/keep.py":   {Data: []byte("pass\n")},
			"template.yaml":                {Data: []byte("name: small\nroot: __act_slug__\nplaceholders: []\n")},
		},
	}
}

func smallVars() map[string]string {
	return map[string]string{
		"act_name": "Demo",
		"act_slug": "demo",
	}
}

func TestRender_MovesStagedTreeIntoPlace(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "demo")

	r := NewRenderer(templates.NewTreeEngine())
	files, err := r.Render(smallSource(), "__act_slug__", smallVars(), target)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"README.md", "static.txt", "casts/keep.py"}, files)

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Demo\n", string(readme))

	assertNoStagingDirs(t, parent)
}

// partialWriteEngine writes some output before failing, simulating an
// engine that dies mid-render.
type partialWriteEngine struct{}

func (partialWriteEngine) Render(src templates.Source, subtree string, vars map[string]string, dstParent string) (string, []string, error) {
	root := filepath.Join(dstParent, "demo")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", nil, err
	}
	if err := os.WriteFile(filepath.Join(root, "partial.txt"), []byte("half"), 0o644); err != nil {
		return "", nil, err
	}
	return "", nil, &templates.RenderError{Kind: templates.ErrKindEngine, Detail: "simulated failure"}
}

func TestRender_FailureLeavesTargetUntouched(t *testing.T) {
	parent := t.TempDir()
	target := filepath.Join(parent, "demo")

	r := NewRenderer(partialWriteEngine{})
	_, err := r.Render(smallSource(), "__act_slug__", smallVars(), target)

	var renderErr *templates.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, templates.ErrKindEngine, renderErr.Kind)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr), "target must not exist after a failed render")

	assertNoStagingDirs(t, parent)
}

func TestRender_MissingSubtree(t *testing.T) {
	parent := t.TempDir()

	r := NewRenderer(templates.NewTreeEngine())
	_, err := r.Render(smallSource(), "__no_such__", smallVars(), filepath.Join(parent, "demo"))

	var renderErr *templates.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, templates.ErrKindTemplateNotFound, renderErr.Kind)
	assertNoStagingDirs(t, parent)
}

// assertNoStagingDirs fails if any staging directory survived under dir.
func assertNoStagingDirs(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".actop-staging-", "stale staging directory left behind")
	}
}

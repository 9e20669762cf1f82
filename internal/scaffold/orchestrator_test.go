package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act-operator/cli/internal/config"
	oerrors "github.com/act-operator/cli/internal/errors"
	"github.com/act-operator/cli/internal/naming"
	"github.com/act-operator/cli/internal/project"
	"github.com/act-operator/cli/internal/templates"
	"github.com/act-operator/cli/internal/testutil"
)

func newTestOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	src, err := templates.Embedded()
	require.NoError(t, err)
	return NewOrchestrator(src, templates.NewTreeEngine(), config.DefaultConfig())
}

func TestCreateAct_EndToEnd(t *testing.T) {
	o := newTestOrchestrator(t)
	target := filepath.Join(t.TempDir(), "out")

	res, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Collector",
		Path:     target,
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "research_bot", res.Act.Snake)
	assert.Equal(t, "collector", res.Cast.Snake)
	assert.Equal(t, target, res.Path)

	// Signature paths all exist, so the project validates for extension.
	v := project.NewValidator(nil)
	vres, err := v.Validate(target, project.ForExtend)
	require.NoError(t, err)
	assert.Equal(t, project.ValidProject, vres.Kind)

	// The cast directory is snake_case and the registry references it.
	assert.DirExists(t, filepath.Join(target, "casts", "collector"))
	registry, err := os.ReadFile(filepath.Join(target, "langgraph.json"))
	require.NoError(t, err)
	assert.Contains(t, string(registry), `"./casts/collector/graph.py:collector_graph"`)

	// Rendered contents had their placeholders substituted.
	graph, err := os.ReadFile(filepath.Join(target, "casts", "collector", "graph.py"))
	require.NoError(t, err)
	assert.Contains(t, string(graph), "class CollectorGraph")
	assert.NotContains(t, string(graph), "{{")

	// No staging directories survive anywhere near the target.
	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".actop-staging-")
	}
}

func TestCreateAct_NormalizesMultiWordCast(t *testing.T) {
	o := newTestOrchestrator(t)
	target := filepath.Join(t.TempDir(), "out")

	res, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Data Feed",
		Path:     target,
	})
	require.NoError(t, err)

	// The template names the cast directory by slug; normalization has to
	// reconcile it to snake and fix the references.
	require.Len(t, res.Renames, 1)
	assert.Equal(t, filepath.Join("casts", "data-feed"), res.Renames[0].From)
	assert.DirExists(t, filepath.Join(target, "casts", "data_feed"))
	assert.NoDirExists(t, filepath.Join(target, "casts", "data-feed"))

	registry, err := os.ReadFile(filepath.Join(target, "langgraph.json"))
	require.NoError(t, err)
	assert.Contains(t, string(registry), "data_feed")
	assert.NotContains(t, string(registry), "data-feed")

	pyproject, err := os.ReadFile(filepath.Join(target, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), "casts/data_feed")
	assert.NotContains(t, string(pyproject), "casts/data-feed")
}

func TestCreateAct_DefaultsPathToActSlug(t *testing.T) {
	o := newTestOrchestrator(t)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	res, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "My Agent",
		CastName: "Collector",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-agent", filepath.Base(res.Path))
}

func TestCreateAct_NonEmptyTarget(t *testing.T) {
	o := newTestOrchestrator(t)
	target := t.TempDir()
	testutil.WriteFile(t, target, "keep.txt", "precious")

	_, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Collector",
		Path:     target,
	})

	var invalidErr *project.InvalidError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "target directory is not empty", invalidErr.Reason)

	// The pre-existing file was not disturbed.
	assert.FileExists(t, filepath.Join(target, "keep.txt"))
	entries, readErr := os.ReadDir(target)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestCreateAct_NameErrors(t *testing.T) {
	o := newTestOrchestrator(t)

	t.Run("empty act name", func(t *testing.T) {
		_, err := o.CreateAct(context.Background(), CreateOptions{ActName: "   ", CastName: "Collector"})
		assert.ErrorIs(t, err, naming.ErrEmptyName)
	})

	t.Run("reserved cast name", func(t *testing.T) {
		_, err := o.CreateAct(context.Background(), CreateOptions{ActName: "Research Bot", CastName: "import"})
		assert.ErrorIs(t, err, naming.ErrReservedName)
	})
}

func TestCreateAct_UnsupportedLanguage(t *testing.T) {
	o := newTestOrchestrator(t)

	_, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Collector",
		Language: "fr",
	})
	assert.ErrorIs(t, err, oerrors.ErrInvalidInput)
}

func TestAddCast_EndToEnd(t *testing.T) {
	o := newTestOrchestrator(t)
	target := filepath.Join(t.TempDir(), "out")

	_, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Collector",
		Path:     target,
	})
	require.NoError(t, err)

	res, err := o.AddCast(context.Background(), AddOptions{
		CastName: "Data Feed",
		Path:     target,
	})
	require.NoError(t, err)

	assert.Equal(t, "data_feed", res.Cast.Snake)
	// Act identity is re-derived from the directory name.
	assert.Equal(t, "out", res.Act.Snake)

	assert.DirExists(t, filepath.Join(target, "casts", "data_feed"))
	assert.FileExists(t, filepath.Join(target, "casts", "data_feed", "graph.py"))

	registry, err := os.ReadFile(filepath.Join(target, "langgraph.json"))
	require.NoError(t, err)
	assert.Contains(t, string(registry), `"./casts/data_feed/graph.py:data_feed_graph"`)
	assert.Contains(t, string(registry), `"./casts/collector"`)

	pyproject, err := os.ReadFile(filepath.Join(target, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), `"casts/collector"`)
	assert.Contains(t, string(pyproject), `"casts/data_feed"`)
}

func TestAddCast_LeavesNeighborDirsAlone(t *testing.T) {
	o := newTestOrchestrator(t)
	target := filepath.Join(t.TempDir(), "out")

	_, err := o.CreateAct(context.Background(), CreateOptions{
		ActName:  "Research Bot",
		CastName: "Collector",
		Path:     target,
	})
	require.NoError(t, err)

	// A directory the user made by hand, not in snake_case.
	testutil.WriteFile(t, target, "casts/My-Data/notes.txt", "hands off\n")

	res, err := o.AddCast(context.Background(), AddOptions{
		CastName: "Analyzer",
		Path:     target,
	})
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(target, "casts", "analyzer"))

	// Only the rendered subtree was normalized.
	assert.DirExists(t, filepath.Join(target, "casts", "My-Data"))
	assert.NoDirExists(t, filepath.Join(target, "casts", "my_data"))
	assert.FileExists(t, filepath.Join(target, "casts", "My-Data", "notes.txt"))
	for _, r := range res.Renames {
		assert.NotContains(t, r.From, "My-Data")
	}

	registry, err := os.ReadFile(filepath.Join(target, "langgraph.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(registry), "my_data")
}

func TestAddCast_RejectsNonProject(t *testing.T) {
	o := newTestOrchestrator(t)
	target := t.TempDir()
	testutil.WriteFile(t, target, "pyproject.toml", "[project]\nname = \"x\"\n")

	before, err := os.ReadDir(target)
	require.NoError(t, err)

	_, err = o.AddCast(context.Background(), AddOptions{CastName: "X", Path: target})

	var invalidErr *project.InvalidError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "missing: langgraph.json", invalidErr.Reason)

	after, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "a rejected add must make no writes")
}

func TestAddCast_ExistingCast(t *testing.T) {
	o := newTestOrchestrator(t)
	target := t.TempDir()
	testutil.WriteActProject(t, target)

	_, err := o.AddCast(context.Background(), AddOptions{CastName: "Collector", Path: target})
	assert.ErrorIs(t, err, oerrors.ErrPrecondition)
	assert.Contains(t, err.Error(), `cast "collector" already exists`)
}

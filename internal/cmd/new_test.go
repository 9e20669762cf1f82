package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act-operator/cli/internal/testutil"
)

// resetFlags clears the package-level flag state between test runs.
func resetFlags() {
	configFlag = ""
	verboseFlag = false
	quietFlag = false
	noColorFlag = false
	actopConfig = nil

	newActName = ""
	newCastName = ""
	newPath = ""
	newLanguage = ""
	newTemplateDir = ""

	castName = ""
	castPath = "."
	castLanguage = ""
	castTemplateDir = ""

	configInitForce = false
}

// executeCommand runs the root command with args and captures its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestNew_CreatesProject(t *testing.T) {
	target := filepath.Join(t.TempDir(), "research-bot")

	out, err := executeCommand(t,
		"new",
		"--act-name", "Research Bot",
		"--cast-name", "Collector",
		"--path", target,
		"--language", "en",
		"--no-color",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Research Bot")
	assert.Contains(t, out, "Collector")
	assert.Contains(t, out, "created successfully")

	assert.FileExists(t, filepath.Join(target, "langgraph.json"))
	assert.DirExists(t, filepath.Join(target, "casts", "collector"))
}

func TestNew_MissingNameNonInteractive(t *testing.T) {
	_, err := executeCommand(t, "new", "--cast-name", "Collector")

	require.Error(t, err)
	assert.Equal(t, ExitInvalidName, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "--act-name")
}

func TestNew_NonEmptyTarget(t *testing.T) {
	target := t.TempDir()
	testutil.WriteFile(t, target, "keep.txt", "data")

	_, err := executeCommand(t,
		"new",
		"-a", "Research Bot",
		"-c", "Collector",
		"-p", target,
	)

	require.Error(t, err)
	assert.Equal(t, ExitPrecondition, ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "not empty")
}

func TestNew_ReservedName(t *testing.T) {
	_, err := executeCommand(t,
		"new",
		"-a", "import",
		"-c", "Collector",
		"-p", filepath.Join(t.TempDir(), "out"),
	)

	require.Error(t, err)
	assert.Equal(t, ExitInvalidName, ExitCodeFromError(err))
}

func TestRootWithoutSubcommand_RunsNew(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out")

	_, err := executeCommand(t,
		"--act-name", "My Agent",
		"--cast-name", "Collector",
		"--path", target,
	)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(target, "casts", "collector"))
}

func TestNew_LanguageFromConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: kr\n"), 0o644))

	target := filepath.Join(t.TempDir(), "out")
	out, err := executeCommand(t,
		"--config", cfgPath,
		"new",
		"-a", "Demo Act",
		"-c", "Collector",
		"-p", target,
		"--no-color",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "한국어")

	readme, err := os.ReadFile(filepath.Join(target, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "프로젝트입니다")
}

func TestNew_LanguageFlagBeatsConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("language: kr\n"), 0o644))

	target := filepath.Join(t.TempDir(), "out")
	out, err := executeCommand(t,
		"--config", cfgPath,
		"new",
		"-a", "Demo Act",
		"-c", "Collector",
		"-p", target,
		"-l", "en",
		"--no-color",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "English")
}

func TestNew_TemplateDirOverride(t *testing.T) {
	tmplDir := t.TempDir()
	testutil.WriteFile(t, tmplDir, "template.yaml", `name: custom
root: __act_slug__
placeholders:
  - key: act_slug
    required: true
`)
	testutil.WriteFile(t, tmplDir, "__act_slug__/only.txt", "custom template\n")

	target := filepath.Join(t.TempDir(), "out")
	_, err := executeCommand(t,
		"new",
		"-a", "Demo",
		"-c", "Collector",
		"-p", target,
		"--template-dir", tmplDir,
	)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(target, "only.txt"))
	raw, err := os.ReadFile(filepath.Join(target, "only.txt"))
	require.NoError(t, err)
	assert.Equal(t, "custom template\n", string(raw))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".actop"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".actop", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile_EnvOverride(t *testing.T) {
	t.Setenv("ACTOP_CONFIG", "/tmp/custom.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty", path: "", want: ""},
		{name: "absolute unchanged", path: "/etc/actop.yaml", want: "/etc/actop.yaml"},
		{name: "relative unchanged", path: "configs/actop.yaml", want: "configs/actop.yaml"},
		{name: "bare tilde", path: "~", want: home},
		{name: "tilde slash", path: "~/config.yaml", want: filepath.Join(home, "config.yaml")},
		{name: "tilde username unsupported", path: "~someone/x", want: "~someone/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateLanguage(t *testing.T) {
	assert.NoError(t, ValidateLanguage("en"))
	assert.NoError(t, ValidateLanguage("kr"))

	err := ValidateLanguage("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "en, kr")
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "한국어", LanguageName("kr"))
	assert.Equal(t, "xx", LanguageName("xx"))
}

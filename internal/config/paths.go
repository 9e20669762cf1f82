package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for actop.
type Paths struct {
	// ConfigFile is the path to the config file (~/.actop/config.yaml).
	ConfigFile string

	// HomeDir is the actop home directory (~/.actop).
	HomeDir string
}

// DefaultPaths returns the default paths for actop.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	actopHome := filepath.Join(homeDir, ".actop")

	return &Paths{
		ConfigFile: filepath.Join(actopHome, "config.yaml"),
		HomeDir:    actopHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If ACTOP_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("ACTOP_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetHomeDir returns the actop home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// EnsureHomeDir creates the actop home directory if it doesn't exist.
func EnsureHomeDir() error {
	homeDir, err := GetHomeDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(homeDir, 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username form is not supported, return as-is.
	return path, nil
}

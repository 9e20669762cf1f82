// Package testutil provides shared fixtures for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates a file (and any parent directories) under dir and
// returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// MinimalPyproject is a pyproject.toml with a single-member uv workspace,
// shaped like the one the act template renders.
const MinimalPyproject = `[project]
name = "demo-act"
version = "0.1.0"
requires-python = ">=3.11"

[tool.uv.workspace]
members = [
    "casts/collector"
]
`

// MinimalLanggraph is a langgraph.json registering one cast.
const MinimalLanggraph = `{
  "dependencies": [
    ".",
    "./casts/collector"
  ],
  "graphs": {
    "collector": "./casts/collector/graph.py:collector_graph"
  },
  "env": ".env"
}
`

// WriteActProject seeds dir with every signature path of a valid act
// project plus one existing cast named collector.
func WriteActProject(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, dir, "pyproject.toml", MinimalPyproject)
	WriteFile(t, dir, "langgraph.json", MinimalLanggraph)
	WriteFile(t, dir, "casts/base_node.py", "class BaseNode: ...\n")
	WriteFile(t, dir, "casts/base_graph.py", "class BaseGraph: ...\n")
	WriteFile(t, dir, "casts/collector/graph.py", "collector_graph = None\n")
}

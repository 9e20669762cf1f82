package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/act-operator/cli/internal/config"
	"github.com/act-operator/cli/internal/naming"
	"github.com/act-operator/cli/internal/templates"
)

func mustResolve(t *testing.T, raw string) naming.Variants {
	t.Helper()
	v, err := naming.Resolve(raw)
	require.NoError(t, err)
	return v
}

func TestFlatten(t *testing.T) {
	pctx := BuildContext(
		mustResolve(t, "Research Bot"),
		mustResolve(t, "Data Feed"),
		"en",
		config.Defaults{License: "MIT", MinPlatform: "3.11"},
	)

	vars := pctx.Flatten()

	assert.Equal(t, map[string]string{
		"act_name":     "Research Bot",
		"act_slug":     "research-bot",
		"act_snake":    "research_bot",
		"act_pascal":   "ResearchBot",
		"cast_name":    "Data Feed",
		"cast_slug":    "data-feed",
		"cast_snake":   "data_feed",
		"cast_pascal":  "DataFeed",
		"language":     "en",
		"license":      "MIT",
		"min_platform": "3.11",
	}, vars)
}

func TestCheckRequired(t *testing.T) {
	m := &templates.Manifest{
		Name: "act",
		Placeholders: []templates.Placeholder{
			{Key: "act_slug", Required: true},
			{Key: "cast_snake", Required: true},
			{Key: "license"},
		},
	}

	pctx := BuildContext(
		mustResolve(t, "Research Bot"),
		mustResolve(t, "Collector"),
		"en",
		config.Defaults{},
	)

	assert.NoError(t, pctx.CheckRequired(m))
}

func TestCheckRequired_MissingKeys(t *testing.T) {
	m := &templates.Manifest{
		Name: "act",
		Placeholders: []templates.Placeholder{
			{Key: "act_slug", Required: true},
			{Key: "language", Required: true},
			{Key: "build_id", Required: true},
		},
	}

	pctx := BuildContext(
		mustResolve(t, "Research Bot"),
		mustResolve(t, "Collector"),
		"", // language deliberately absent
		config.Defaults{},
	)

	err := pctx.CheckRequired(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build_id, language")
}

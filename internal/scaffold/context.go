// Package scaffold composes the act scaffolding pipeline: context
// construction, staged rendering, post-render normalization, and the two
// orchestrated operations built from them.
package scaffold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/act-operator/cli/internal/config"
	"github.com/act-operator/cli/internal/naming"
	"github.com/act-operator/cli/internal/templates"
)

// ProjectContext is the typed mapping handed to the template engine for
// one render. It stays structured inside the pipeline and flattens to a
// primitive string map only at the engine boundary.
type ProjectContext struct {
	// Act holds the project name variants.
	Act naming.Variants

	// Cast holds the sub-component name variants.
	Cast naming.Variants

	// Language is the content language code.
	Language string

	// Defaults are the static template values.
	Defaults config.Defaults
}

// BuildContext assembles a ProjectContext. Pure assembly, no I/O.
func BuildContext(act, cast naming.Variants, language string, defaults config.Defaults) ProjectContext {
	return ProjectContext{
		Act:      act,
		Cast:     cast,
		Language: language,
		Defaults: defaults,
	}
}

// Flatten converts the context into the flat key/value map the template
// engine consumes.
func (c ProjectContext) Flatten() map[string]string {
	return map[string]string{
		"act_name":     c.Act.Title,
		"act_slug":     c.Act.Slug,
		"act_snake":    c.Act.Snake,
		"act_pascal":   c.Act.Pascal,
		"cast_name":    c.Cast.Title,
		"cast_slug":    c.Cast.Slug,
		"cast_snake":   c.Cast.Snake,
		"cast_pascal":  c.Cast.Pascal,
		"language":     c.Language,
		"license":      c.Defaults.License,
		"min_platform": c.Defaults.MinPlatform,
	}
}

// CheckRequired verifies that every key the manifest marks required is
// present and non-empty in the flattened context. A gap is a contract
// violation surfaced before any rendering starts.
func (c ProjectContext) CheckRequired(m *templates.Manifest) error {
	vars := c.Flatten()

	var missing []string
	for _, key := range m.RequiredKeys() {
		if vars[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return fmt.Errorf("template %s requires context keys the pipeline did not supply: %s",
		m.Name, strings.Join(missing, ", "))
}

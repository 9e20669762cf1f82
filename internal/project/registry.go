package project

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// registry mirrors the langgraph.json document. Unknown top-level keys are
// preserved through Extra so a rewrite never loses user additions.
type registry struct {
	Dependencies []string          `json:"dependencies"`
	Graphs       map[string]string `json:"graphs"`
	Env          string            `json:"env,omitempty"`

	extra map[string]json.RawMessage
}

// registryKnownKeys are the fields decoded into struct fields; everything
// else round-trips through extra.
var registryKnownKeys = map[string]bool{
	"dependencies": true,
	"graphs":       true,
	"env":          true,
}

func loadRegistry(path string) (*registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var r registry
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	r.extra = make(map[string]json.RawMessage)
	for k, v := range all {
		if !registryKnownKeys[k] {
			r.extra[k] = v
		}
	}
	return &r, nil
}

func (r *registry) save(path string) error {
	doc := make(map[string]interface{}, len(r.extra)+3)
	for k, v := range r.extra {
		doc[k] = v
	}
	doc["dependencies"] = r.Dependencies
	doc["graphs"] = r.Graphs
	if r.Env != "" {
		doc["env"] = r.Env
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// AddCastToRegistry registers a cast in the langgraph.json at path: its
// package joins dependencies (sorted, deduped) and its graph joins the
// graphs map. Re-adding an existing cast is a no-op.
func AddCastToRegistry(path, castSnake string) error {
	r, err := loadRegistry(path)
	if err != nil {
		return err
	}

	dep := "./casts/" + castSnake
	if !slices.Contains(r.Dependencies, dep) {
		r.Dependencies = append(r.Dependencies, dep)
		slices.Sort(r.Dependencies)
	}

	if r.Graphs == nil {
		r.Graphs = make(map[string]string)
	}
	if _, ok := r.Graphs[castSnake]; !ok {
		r.Graphs[castSnake] = fmt.Sprintf("./casts/%s/graph.py:%s_graph", castSnake, castSnake)
	}

	return r.save(path)
}

// RewriteCastPath updates every reference to a renamed cast directory in
// the langgraph.json at path: the graph key and all ./casts/<old> paths.
// A missing file is a no-op so normalization stays usable on partial trees.
func RewriteCastPath(path, oldName, newName string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(raw)
	content = strings.ReplaceAll(content, fmt.Sprintf("%q", oldName), fmt.Sprintf("%q", newName))
	content = strings.ReplaceAll(content, "/casts/"+oldName+"/", "/casts/"+newName+"/")
	content = strings.ReplaceAll(content, "/casts/"+oldName+`"`, "/casts/"+newName+`"`)

	if content == string(raw) {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

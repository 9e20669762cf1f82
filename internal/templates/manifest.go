package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// ManifestFileName is the manifest every template source must carry.
const ManifestFileName = "template.yaml"

// EngineVersion is the tree engine version, checked against each manifest's
// engine constraint.
const EngineVersion = "1.0.0"

//go:embed schema/template.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Placeholder declares one key a template expects in its context.
type Placeholder struct {
	// Key is the placeholder name as it appears in tokens and contents.
	Key string `yaml:"key"`

	// Description explains what the key holds.
	Description string `yaml:"description,omitempty"`

	// Required marks keys the context must provide before rendering starts.
	Required bool `yaml:"required,omitempty"`
}

// Manifest is the declarative template.yaml every template source ships.
// It names the subtrees to render and enumerates the placeholder keys the
// template references, so context gaps surface before rendering begins.
type Manifest struct {
	// Name is the template identifier.
	Name string `yaml:"name"`

	// Description explains the template's purpose.
	Description string `yaml:"description,omitempty"`

	// Engine is a semver constraint on the tree engine version.
	Engine string `yaml:"engine,omitempty"`

	// Root is the tokenized directory rendered by create operations.
	Root string `yaml:"root"`

	// CastRoot is the tokenized subtree rendered when adding a cast to an
	// existing act.
	CastRoot string `yaml:"castRoot,omitempty"`

	// ComponentsDir is the directory casts live under. Defaults to "casts".
	ComponentsDir string `yaml:"componentsDir,omitempty"`

	// Languages restricts the content languages this template supports.
	// Empty means no restriction.
	Languages []string `yaml:"languages,omitempty"`

	// Placeholders enumerates the context keys the template references.
	Placeholders []Placeholder `yaml:"placeholders"`
}

// RequiredKeys returns the placeholder keys the context must provide.
func (m *Manifest) RequiredKeys() []string {
	var keys []string
	for _, p := range m.Placeholders {
		if p.Required {
			keys = append(keys, p.Key)
		}
	}
	return keys
}

// SupportsLanguage reports whether the template ships content for the
// given language code.
func (m *Manifest) SupportsLanguage(code string) bool {
	if len(m.Languages) == 0 {
		return true
	}
	for _, l := range m.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// LoadManifest reads, schema-validates, and decodes the manifest of a
// template source, and checks its engine constraint against EngineVersion.
func LoadManifest(src Source) (*Manifest, error) {
	raw, err := fs.ReadFile(src.FS, ManifestFileName)
	if err != nil {
		return nil, newRenderError(ErrKindTemplateNotFound, src.Name+" has no "+ManifestFileName, err)
	}

	if err := validateManifestBytes(raw); err != nil {
		return nil, newRenderError(ErrKindEngine, fmt.Sprintf("%s: %v", ManifestFileName, err), err)
	}

	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, newRenderError(ErrKindEngine, ManifestFileName+": "+err.Error(), err)
	}

	if m.ComponentsDir == "" {
		m.ComponentsDir = "casts"
	}

	if err := checkEngineConstraint(m.Engine); err != nil {
		return nil, newRenderError(ErrKindEngine, err.Error(), err)
	}

	return &m, nil
}

// checkEngineConstraint verifies the manifest's engine range admits this
// engine version.
func checkEngineConstraint(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid engine constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(EngineVersion)
	if err != nil {
		return fmt.Errorf("parsing engine version: %w", err)
	}

	if !c.Check(v) {
		return fmt.Errorf("template requires engine %q, this engine is %s", constraint, EngineVersion)
	}
	return nil
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("template.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("template.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// validateManifestBytes validates raw manifest YAML against the embedded
// schema and reports every leaf issue.
func validateManifestBytes(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	// Round-trip through JSON so the validator sees JSON-compatible types.
	jsonData, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}

	var issues []string
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		issues = append(issues, ve.Error())
	}
	return fmt.Errorf("invalid manifest: %s", strings.Join(issues, "; "))
}

// collectIssues walks the validation error tree and keeps leaf errors that
// name a concrete property.
func collectIssues(ve *jsonschema.ValidationError, issues *[]string) {
	if len(ve.Causes) == 0 {
		if ve.ErrorKind == nil {
			return
		}
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = "manifest"
		}
		*issues = append(*issues, fmt.Sprintf("%s: %s", path, ve.ErrorKind.LocalizedString(printer)))
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// normalizeYAML recursively converts YAML-decoded values into
// JSON-compatible types.
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = normalizeYAML(item)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprintf("%v", k)] = normalizeYAML(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, item := range val {
			a[i] = normalizeYAML(item)
		}
		return a
	default:
		return val
	}
}

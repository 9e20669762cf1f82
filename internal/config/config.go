// Package config provides configuration loading and management.
package config

// Defaults contains the static values substituted into rendered templates.
type Defaults struct {
	// License is the license identifier stamped into generated manifests.
	// Env: ACTOP_LICENSE, Default: "MIT"
	License string `yaml:"license,omitempty"`

	// MinPlatform is the minimum Python version generated projects declare.
	// Env: ACTOP_MIN_PLATFORM, Default: "3.11"
	MinPlatform string `yaml:"minPlatform,omitempty"`
}

// Config represents the actop CLI configuration.
// Loaded from ~/.actop/config.yaml; environment variables override file values.
type Config struct {
	// Language selects the content language of generated documentation.
	// Env: ACTOP_LANGUAGE, Default: "en"
	Language string `yaml:"language,omitempty"`

	// TemplateDir points at an on-disk template source directory that
	// overrides the embedded act template.
	// Env: ACTOP_TEMPLATE_DIR
	TemplateDir string `yaml:"templateDir,omitempty"`

	// Signature overrides the checklist of relative paths whose presence
	// marks a directory as a valid Act project.
	Signature []string `yaml:"signature,omitempty"`

	// Defaults are static template values.
	Defaults Defaults `yaml:"defaults"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `actop config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Language: DefaultLanguage,
		Defaults: Defaults{
			License:     "MIT",
			MinPlatform: "3.11",
		},
	}
}

// WithDefaults fills unset fields with their default values.
func (c *Config) WithDefaults() *Config {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.Defaults.License == "" {
		c.Defaults.License = "MIT"
	}
	if c.Defaults.MinPlatform == "" {
		c.Defaults.MinPlatform = "3.11"
	}
	return c
}

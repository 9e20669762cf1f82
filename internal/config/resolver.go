package config

import (
	"os"

	"github.com/act-operator/cli/internal/output"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault Source = "default"
)

// ResolvedValue is one configuration value after precedence resolution.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from.
	Source Source
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[Source]string
}

// ResolveValue resolves one value using precedence:
// (1) flag, (2) environment variable, (3) config file, (4) default.
func ResolveValue(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[Source]string),
	}

	envValue := ""
	if envVar != "" {
		envValue = os.Getenv(envVar)
	}

	record := func(source Source, value string) {
		if value != "" && result.Value != "" {
			result.Shadowed[source] = value
			return
		}
		if value != "" {
			result.Value = value
			result.Source = source
		}
	}

	record(SourceFlag, flagValue)
	record(SourceEnv, envValue)
	record(SourceConfig, configValue)
	record(SourceDefault, defaultValue)

	return result
}

// ResolveLanguage resolves the content language using precedence:
// --language flag > ACTOP_LANGUAGE > config.language > "en".
func ResolveLanguage(flagValue string, cfg *Config) ResolvedValue {
	configValue := ""
	if cfg != nil {
		configValue = cfg.Language
	}
	return ResolveValue("language", flagValue, "ACTOP_LANGUAGE", configValue, DefaultLanguage)
}

// ResolveTemplateDir resolves the template source override using precedence:
// --template-dir flag > ACTOP_TEMPLATE_DIR > config.templateDir.
// An empty result selects the embedded template.
func ResolveTemplateDir(flagValue string, cfg *Config) ResolvedValue {
	configValue := ""
	if cfg != nil {
		configValue = cfg.TemplateDir
	}
	return ResolveValue("templateDir", flagValue, "ACTOP_TEMPLATE_DIR", configValue, "")
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}

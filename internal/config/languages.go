package config

import (
	"fmt"
	"strings"
)

// DefaultLanguage is the content language used when none is configured.
const DefaultLanguage = "en"

// Language pairs a language code with its display name.
type Language struct {
	Code string
	Name string
}

// supportedLanguages lists the content languages templates ship with.
var supportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "kr", Name: "한국어"},
}

// SupportedLanguages returns the languages generated documentation supports.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// LanguageName returns the display name for a language code, or the code
// itself when unknown.
func LanguageName(code string) string {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

// ValidateLanguage checks that code names a supported language.
func ValidateLanguage(code string) error {
	for _, l := range supportedLanguages {
		if l.Code == code {
			return nil
		}
	}

	codes := make([]string, len(supportedLanguages))
	for i, l := range supportedLanguages {
		codes[i] = l.Code
	}
	return fmt.Errorf("unsupported language %q (supported: %s)", code, strings.Join(codes, ", "))
}

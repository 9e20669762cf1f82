package naming

import "errors"

// ErrReservedName reports a derived identifier that collides with a
// reserved keyword of the target ecosystem. Resolve never returns it;
// callers that know the destination context wrap it when rejecting.
var ErrReservedName = errors.New("name collides with a reserved keyword")

// reservedWords are the Python keywords that cannot be used as module or
// package names in generated projects. Soft keywords (match, case, type)
// remain legal identifiers and are deliberately absent, as are the
// capitalized keywords (False, None, True): derived variants are
// lowercased, and their lowercase forms are ordinary identifiers.
var reservedWords = map[string]bool{
	"and":      true,
	"as":       true,
	"assert":   true,
	"async":    true,
	"await":    true,
	"break":    true,
	"class":    true,
	"continue": true,
	"def":      true,
	"del":      true,
	"elif":     true,
	"else":     true,
	"except":   true,
	"finally":  true,
	"for":      true,
	"from":     true,
	"global":   true,
	"if":       true,
	"import":   true,
	"in":       true,
	"is":       true,
	"lambda":   true,
	"nonlocal": true,
	"not":      true,
	"or":       true,
	"pass":     true,
	"raise":    true,
	"return":   true,
	"try":      true,
	"while":    true,
	"with":     true,
	"yield":    true,
}

// IsReserved reports whether name collides with a reserved keyword of the
// target ecosystem. Resolve never renames on collision; callers that know
// the destination context decide how to react.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// Package cmd provides CLI command implementations.
package cmd

// Exit codes, one per error kind so calling scripts can branch on the
// failure category.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unclassified error occurred.
	ExitGeneralError = 1

	// ExitInvalidName indicates an empty, unusable, or reserved name.
	ExitInvalidName = 2

	// ExitPrecondition indicates the target directory failed validation:
	// non-empty on create, not a recognized act on extend.
	ExitPrecondition = 3

	// ExitRenderError indicates the template engine failed.
	ExitRenderError = 4

	// ExitNormalizeError indicates the post-render rename pass failed.
	ExitNormalizeError = 5

	// ExitConfigError indicates an unreadable or invalid config file.
	ExitConfigError = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "success"
	case ExitGeneralError:
		return "general error"
	case ExitInvalidName:
		return "invalid name"
	case ExitPrecondition:
		return "precondition failed"
	case ExitRenderError:
		return "render failed"
	case ExitNormalizeError:
		return "normalize failed"
	case ExitConfigError:
		return "config error"
	default:
		return "unknown"
	}
}

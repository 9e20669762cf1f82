package output

import "github.com/charmbracelet/lipgloss"

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: act names, cast names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" entry status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "renamed" entry status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failures (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (act names, cast names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, rendering, normalizing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

var colorEnabled = true

// Scaffold entry statuses.
const (
	StatusCreated = "created"
	StatusRenamed = "renamed"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a given entry status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	if !colorEnabled {
		return lipgloss.NewStyle()
	}
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusRenamed:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	if !colorEnabled {
		return "✔ " + msg
	}
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// DisableColor strips all styling, for --no-color runs and tests.
func DisableColor() {
	colorEnabled = false
	plain := lipgloss.NewStyle()
	StyleNoun = plain
	StyleAction = plain
	StyleDim = plain
	StyleSummary = plain
}

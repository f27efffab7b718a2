// Package cli provides styled terminal output for the non-interactive
// commands.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Eco palette, shared with the default dashboard theme.
var (
	leaf  = lipgloss.Color("#16a34a")
	mint  = lipgloss.Color("#4ade80")
	amber = lipgloss.Color("#f59e0b")
	clay  = lipgloss.Color("#ef4444")
	sky   = lipgloss.Color("#38bdf8")
	stone = lipgloss.Color("#737373")
)

var (
	// SubtleStyle is for hints and progress chatter.
	SubtleStyle = lipgloss.NewStyle().Foreground(stone)
	// BoldStyle highlights quick-action keys.
	BoldStyle = lipgloss.NewStyle().Bold(true)
	// PromptStyle labels the user's side of the chat.
	PromptStyle = lipgloss.NewStyle().Bold(true).Foreground(leaf)
	// CoachStyle labels coach replies.
	CoachStyle = lipgloss.NewStyle().Bold(true).Foreground(mint)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(leaf).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(mint)
	warningStyle = lipgloss.NewStyle().Foreground(amber)
	errorStyle   = lipgloss.NewStyle().Foreground(clay)
	infoStyle    = lipgloss.NewStyle().Foreground(sky)
)

// Icons used in line-mode output.
const (
	RecycleIcon = "♻️"
	CoachIcon   = "🌍"
	TrophyIcon  = "🏆"
)

// FormatSuccess renders a positive outcome.
func FormatSuccess(message string) string {
	return successStyle.Render("✓ " + message)
}

// FormatError renders a failure the user can retry.
func FormatError(message string) string {
	return errorStyle.Render("✗ " + message)
}

// FormatWarning renders a validation warning.
func FormatWarning(message string) string {
	return warningStyle.Render("⚠️ " + message)
}

// FormatInfo renders a neutral notice.
func FormatInfo(message string) string {
	return infoStyle.Render("ℹ️ " + message)
}

// FormatTitle renders a section heading.
func FormatTitle(title string) string {
	return titleStyle.Render(RecycleIcon + "  " + title)
}

// FormatPrompt renders an input prompt.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

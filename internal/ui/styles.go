package ui

import "github.com/charmbracelet/lipgloss"

// Fixed styles for plain command output. The interactive view derives its
// styles from a Theme instead.
var (
	// Colors
	ColorPrimary   = lipgloss.Color("#8a2be2") // Purple
	ColorSecondary = lipgloss.Color("241")     // Gray
	ColorSuccess   = lipgloss.Color("42")      // Green
	ColorError     = lipgloss.Color("160")     // Red
	ColorWarning   = lipgloss.Color("214")     // Orange/Yellow
	ColorText      = lipgloss.Color("252")     // White/Gray

	// Base Styles
	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}

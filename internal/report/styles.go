package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles for compile output. Lipgloss automatically degrades
// colors based on terminal capabilities.
var (
	// StyleHeader is used for section headers and file locations.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError is used for failed compilations.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleWarning is used for non-fatal problems.
	StyleWarning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleSuccess is used for completion messages.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleDim is used for hints and secondary detail.
	StyleDim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Render applies a lipgloss style to text when colors are enabled. When
// useColors is false, the text is returned unmodified.
func Render(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

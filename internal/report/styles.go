package report

import "github.com/charmbracelet/lipgloss"

// Styles by role. Colors are ANSI palette indexes so they follow the
// terminal theme; lipgloss drops them on terminals without color.
var (
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleWarning  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleWritten  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// SeverityStyle picks the style for an issue's caret and counts
func SeverityStyle(severity string) lipgloss.Style {
	if severity == SeverityError {
		return StyleError
	}
	return StyleWarning
}

// RenderStyle renders text with style, or returns it as is without colors
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

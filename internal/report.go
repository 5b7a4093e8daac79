package internal

import "github.com/charmbracelet/lipgloss"

var (
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Section renders a section banner.
func Section(title string) string {
	return sectionStyle.Render("=== " + title + " ===")
}

// Warn renders a non-fatal warning line.
func Warn(msg string) string {
	return warningStyle.Render("⚠ " + msg)
}

// Success renders a success line.
func Success(msg string) string {
	return successStyle.Render("✓ " + msg)
}

// Dim renders secondary detail text.
func Dim(msg string) string {
	return dimStyle.Render(msg)
}

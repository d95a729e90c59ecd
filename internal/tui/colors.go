package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorsEnabled reports whether the terminal supports color output at all
func ColorsEnabled() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

// ColorCurrentBranch highlights the currently checked out branch in tree output
func ColorCurrentBranch(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("6")).
		Bold(true).
		Render(text)
}

// ColorDim renders secondary text such as commit summaries
func ColorDim(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Faint(true).
		Render(text)
}

// ColorYellow colors text yellow; used for warnings in land output
func ColorYellow(text string) string {
	if !ColorsEnabled() {
		return text
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

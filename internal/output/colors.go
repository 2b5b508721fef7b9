package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1")).Bold(true)
	subjectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// colorEnabled reports whether styled output should be produced.
// Piped output stays plain so it can be fed back into scripts.
func colorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Tag styles a series tag name for console output.
func Tag(name string) string {
	if !colorEnabled() {
		return name
	}
	return tagStyle.Render(name)
}

// Subject styles a patch subject line for console output.
func Subject(text string) string {
	if !colorEnabled() {
		return text
	}
	return subjectStyle.Render(text)
}

// Dim styles secondary detail for console output.
func Dim(text string) string {
	if !colorEnabled() {
		return text
	}
	return dimStyle.Render(text)
}

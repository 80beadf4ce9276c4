package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const defaultHint = "tab: next  shift+tab: back  ctrl+s: submit  esc: close"

// StatusBar manages the bottom status bar.
type StatusBar struct {
	message  string
	progress string
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetMessage sets a one-off message shown instead of the key hints.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
}

// Message returns the current message.
func (s *StatusBar) Message() string {
	return s.message
}

// SetProgress updates the right-aligned progress text.
func (s *StatusBar) SetProgress(p string) {
	s.progress = p
}

// Render renders the status bar.
func (s *StatusBar) Render(width int) string {
	leftText := defaultHint
	if s.message != "" {
		leftText = s.message
	}

	leftStyled := lipgloss.NewStyle().Faint(true).Render(leftText)
	right := lipgloss.NewStyle().Faint(true).Render(s.progress)

	// Ensure right part is always visible
	rightW := lipgloss.Width(right)
	if rightW >= width {
		return ansi.Truncate(right, width, "…")
	}

	avail := width - rightW - 1
	leftRendered := leftStyled
	if lipgloss.Width(leftRendered) > avail {
		leftRendered = ansi.Truncate(leftRendered, avail, "…")
	} else if lipgloss.Width(leftRendered) < avail {
		leftRendered = leftRendered + strings.Repeat(" ", avail-lipgloss.Width(leftRendered))
	}

	return leftRendered + " " + right
}

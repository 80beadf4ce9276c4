package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used for page markers and chrome.
type Theme struct {
	DoneColor    string
	DirtyColor   string
	CurrentColor string
	ErrorColor   string
	DividerColor string
}

func darkTheme() Theme {
	return Theme{
		DoneColor:    "34",
		DirtyColor:   "214",
		CurrentColor: "63",
		ErrorColor:   "196",
		DividerColor: "240",
	}
}

func lightTheme() Theme {
	return Theme{
		DoneColor:    "22",  // Dark Green
		DirtyColor:   "130", // Dark Orange
		CurrentColor: "27",  // Dark Blue
		ErrorColor:   "9",
		DividerColor: "244", // Medium Gray
	}
}

// GetTheme returns the named base theme; anything but "light" is dark.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

func (t Theme) DoneText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DoneColor)).Render(s)
}

func (t Theme) DirtyText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DirtyColor)).Render(s)
}

func (t Theme) CurrentText(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.CurrentColor)).Render(s)
}

func (t Theme) ErrorText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.ErrorColor)).Render(s)
}

func (t Theme) DividerText(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.DividerColor)).Render(s)
}

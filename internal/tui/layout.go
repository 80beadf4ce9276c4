package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const minLeftWidth = 16

// Layout manages screen layout calculations.
type Layout struct {
	width     int
	height    int
	leftWidth int
}

// NewLayout creates a new layout manager.
func NewLayout() *Layout {
	return &Layout{}
}

// SetSize updates the layout dimensions. The page list takes a third of the
// width on first sizing.
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height
	if l.leftWidth == 0 {
		l.leftWidth = width / 3
	}
}

// Width returns the total width.
func (l *Layout) Width() int {
	return l.width
}

// Height returns the total height.
func (l *Layout) Height() int {
	return l.height
}

// LeftWidth returns the page list width.
func (l *Layout) LeftWidth() int {
	if l.leftWidth < minLeftWidth {
		return minLeftWidth
	}
	return l.leftWidth
}

// RightWidth returns the page body width.
func (l *Layout) RightWidth() int {
	rightW := l.width - l.LeftWidth() - 1 // 1 for divider
	if rightW < 1 {
		rightW = 1
	}
	return rightW
}

// ContentHeight returns the height available between the bars.
func (l *Layout) ContentHeight() int {
	// heading + top rule + bottom rule + status bar
	h := l.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// RenderFrame renders the heading, rules, columns and status bar.
func (l *Layout) RenderFrame(heading string, leftLines, rightLines []string, bottomBar string, theme Theme) string {
	var b strings.Builder

	b.WriteString(padToWidth(lipgloss.NewStyle().Bold(true).Render(heading), l.width))
	b.WriteByte('\n')
	b.WriteString(theme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')

	leftW := l.LeftWidth()
	rightW := l.RightWidth()
	sep := theme.DividerText("│")

	rows := l.ContentHeight()
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(leftLines) {
			left = leftLines[i]
		}
		if i < len(rightLines) {
			right = rightLines[i]
		}
		b.WriteString(padToWidth(left, leftW))
		b.WriteString(sep)
		b.WriteString(padToWidth(right, rightW))
		b.WriteByte('\n')
	}

	b.WriteString(theme.DividerText(strings.Repeat("─", l.width)))
	b.WriteByte('\n')
	b.WriteString(bottomBar)
	return b.String()
}

func padToWidth(s string, w int) string {
	width := lipgloss.Width(s)
	if width == w {
		return s
	}
	if width < w {
		return s + strings.Repeat(" ", w-width)
	}
	return ansi.Truncate(s, w, "…")
}

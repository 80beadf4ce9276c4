package components

import (
	"fmt"

	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// PageList manages the left pane list of rendered pages.
type PageList struct {
	pages  []wizard.Page
	offset int
	style  func(p wizard.Page, line string) string
}

// NewPageList creates a new page list. style may be nil.
func NewPageList(style func(p wizard.Page, line string) string) *PageList {
	return &PageList{style: style}
}

// SetPages updates the list.
func (l *PageList) SetPages(pages []wizard.Page) {
	l.pages = pages
}

// Pages returns the listed pages.
func (l *PageList) Pages() []wizard.Page {
	return l.pages
}

// Selected returns the index of the current page, or -1.
func (l *PageList) Selected() int {
	for i, p := range l.pages {
		if p.State.Current {
			return i
		}
	}
	return -1
}

// EnsureVisible ensures the current page is visible.
func (l *PageList) EnsureVisible(visibleCount int) {
	if len(l.pages) == 0 || visibleCount <= 0 {
		return
	}

	maxStart := len(l.pages) - visibleCount
	if maxStart < 0 {
		maxStart = 0
	}
	if l.offset > maxStart {
		l.offset = maxStart
	}

	sel := l.Selected()
	if sel < 0 {
		return
	}
	if sel < l.offset {
		l.offset = sel
	} else if sel >= l.offset+visibleCount {
		l.offset = sel - visibleCount + 1
	}
}

// Render renders the page list to lines.
func (l *PageList) Render(height int) []string {
	lines := make([]string, 0, height)

	if len(l.pages) == 0 {
		lines = append(lines, "No pages")
		return lines
	}

	l.EnsureVisible(height)

	end := l.offset + height
	if end > len(l.pages) {
		end = len(l.pages)
	}

	for i := l.offset; i < end; i++ {
		p := l.pages[i]
		marker := "  "
		if p.State.Current {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s %s", marker, PageStatusLabel(p.State), p.Label)
		if l.style != nil {
			line = l.style(p, line)
		}
		lines = append(lines, line)
	}

	return lines
}

// PageStatusLabel returns a short status tag for a page: "~" modified,
// "✓" done, "*" required and pending, "·" optional and pending.
func PageStatusLabel(s wizard.PageState) string {
	switch {
	case s.Dirty:
		return "~"
	case s.Done:
		return "✓"
	case s.Required:
		return "*"
	default:
		return "·"
	}
}

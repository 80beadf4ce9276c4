package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageList_Render(t *testing.T) {
	l := NewPageList(nil)
	l.SetPages([]wizard.Page{
		{Key: "a", Label: "Name", State: wizard.PageState{Done: true, Required: true}},
		{Key: "b", Label: "Target", State: wizard.PageState{Current: true, Required: true}},
		{Key: "c", Label: "Notes", State: wizard.PageState{Done: true, Dirty: true}},
		{Key: "d", Label: "Review"},
	})

	lines := l.Render(10)
	require.Len(t, lines, 4)
	assert.Equal(t, "  ✓ Name", lines[0])
	assert.Equal(t, "> * Target", lines[1])
	assert.Equal(t, "  ~ Notes", lines[2])
	assert.Equal(t, "  · Review", lines[3])
	assert.Equal(t, 1, l.Selected())
}

func TestPageList_KeepsCurrentVisible(t *testing.T) {
	l := NewPageList(func(p wizard.Page, line string) string { return strings.ToUpper(line) })
	pages := make([]wizard.Page, 6)
	for i := range pages {
		pages[i] = wizard.Page{Key: string(rune('a' + i)), Label: string(rune('a' + i))}
	}
	pages[5].State.Current = true
	l.SetPages(pages)

	lines := l.Render(3)
	require.Len(t, lines, 3)
	assert.Equal(t, "> · F", lines[2])
}

func TestPageList_Empty(t *testing.T) {
	assert.Equal(t, []string{"No pages"}, NewPageList(nil).Render(5))
}

func TestStatusBar_Render(t *testing.T) {
	s := NewStatusBar()
	s.SetProgress("required 1/2")

	out := ansi.Strip(s.Render(80))
	assert.True(t, strings.HasPrefix(out, "tab: next"))
	assert.True(t, strings.HasSuffix(out, "required 1/2"))
	assert.Equal(t, 80, ansi.StringWidth(out))

	s.SetMessage("required pages are incomplete")
	out = ansi.Strip(s.Render(40))
	assert.True(t, strings.HasPrefix(out, "required pages"))
	assert.Equal(t, 40, ansi.StringWidth(out))
}

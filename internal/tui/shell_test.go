package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deployConfig() config.Config {
	return config.Config{
		Heading: "Create deployment",
		Scroll:  config.ScrollConfig{Offset: 1, Container: wizard.DefaultContainer},
		Pages: []config.PageDef{
			{Key: "name", Label: "Name", Kind: config.KindInput, Required: true},
			{
				Key:      "target",
				Label:    "Target",
				Kind:     config.KindChoice,
				Options:  []string{"kubernetes", "vm"},
				Includes: map[string][]string{"kubernetes": {"namespace"}, "vm": {"host"}},
				Required: true,
			},
			{Key: "namespace", Label: "Namespace", Kind: config.KindInput, Required: true, Hidden: true},
			{Key: "host", Label: "Host", Kind: config.KindInput, Required: true, Hidden: true},
			{Key: "review", Label: "Review", Kind: config.KindReview},
		},
	}
}

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	s, err := NewShell(deployConfig(), nil)
	require.NoError(t, err)
	s.Init()
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return s
}

func send(s *Shell, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = s.Update(m)
	}
	return cmd
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	back      = tea.KeyMsg{Type: tea.KeyShiftTab}
	submitKey = tea.KeyMsg{Type: tea.KeyCtrlS}
	escape    = tea.KeyMsg{Type: tea.KeyEsc}
)

func currentKey(t *testing.T, s *Shell) string {
	t.Helper()
	p, ok := s.Coordinator().CurrentPage()
	require.True(t, ok)
	return p.Key
}

func renderedKeys(s *Shell) []string {
	var out []string
	for _, p := range s.Coordinator().RenderedPages() {
		out = append(out, p.Key)
	}
	return out
}

func TestShell_FirstPageIsCurrent(t *testing.T) {
	s := newTestShell(t)

	assert.Equal(t, "name", currentKey(t, s))
	assert.Equal(t, []string{"name", "target", "review"}, renderedKeys(s))

	plain := ansi.Strip(s.View())
	assert.True(t, strings.HasPrefix(plain, "Create deployment"), "unexpected header: %q", strings.SplitN(plain, "\n", 2)[0])
	assert.Contains(t, plain, "> * Name")
	assert.Contains(t, plain, "│")
	assert.Contains(t, plain, "required 0/2")
}

func TestShell_SubmitFlow(t *testing.T) {
	s := newTestShell(t)

	send(s, runes("my-app"))
	p, err := s.Coordinator().GetPage("name")
	require.NoError(t, err)
	assert.True(t, p.State.Dirty)

	send(s, enter)
	assert.Equal(t, "target", currentKey(t, s))

	send(s, runes("j"), enter)
	assert.Equal(t, []string{"name", "target", "host", "review"}, renderedKeys(s))
	assert.Equal(t, "host", currentKey(t, s))

	send(s, runes("10.0.0.5"), enter)
	assert.Equal(t, "review", currentKey(t, s))
	review, err := s.Coordinator().GetPage("review")
	require.NoError(t, err)
	assert.True(t, review.State.Done)

	plain := ansi.Strip(s.View())
	assert.Contains(t, plain, "Host: 10.0.0.5")
	assert.Contains(t, plain, "ready")

	cmd := send(s, enter)
	require.NotNil(t, cmd)
	assert.True(t, s.Closed())
	res := s.Result()
	assert.True(t, res.Submitted)
	assert.Equal(t, map[string]string{"name": "my-app", "target": "vm", "host": "10.0.0.5"}, res.Values)

	// Closing resets the session.
	assert.Empty(t, s.Coordinator().Pages())
	assert.Empty(t, s.Coordinator().Heading())
}

func TestShell_SubmitGating(t *testing.T) {
	s := newTestShell(t)

	send(s, submitKey)
	assert.False(t, s.Closed())
	assert.Equal(t, "required pages are incomplete", s.statusBar.Message())

	send(s, runes("my-app"), enter, runes("j"), enter, runes("host-1"), enter)
	require.Equal(t, "review", currentKey(t, s))

	// Going back and editing leaves the host page dirty.
	send(s, back, runes("0"))
	assert.Equal(t, "host", currentKey(t, s))
	assert.False(t, s.Coordinator().IsComplete())
	assert.True(t, s.Coordinator().AllPagesVisited())

	send(s, submitKey)
	assert.False(t, s.Closed())
	assert.Equal(t, "some pages have unconfirmed changes", s.statusBar.Message())

	send(s, enter, submitKey)
	assert.True(t, s.Closed())
	assert.Equal(t, "host-10", s.Result().Values["host"])
}

func TestShell_RequiredInput(t *testing.T) {
	s := newTestShell(t)

	send(s, enter)
	assert.Equal(t, "name", currentKey(t, s))
	assert.Contains(t, ansi.Strip(s.View()), "a value is required")
}

func TestShell_SwitchingChoiceHidesPages(t *testing.T) {
	s := newTestShell(t)

	send(s, runes("my-app"), enter, enter)
	assert.Equal(t, []string{"name", "target", "namespace", "review"}, renderedKeys(s))
	assert.Equal(t, "namespace", currentKey(t, s))

	send(s, back, runes("j"), enter)
	assert.Equal(t, []string{"name", "target", "host", "review"}, renderedKeys(s))
	assert.Equal(t, "host", currentKey(t, s))
}

func TestShell_NavigationBounds(t *testing.T) {
	s := newTestShell(t)

	send(s, back)
	assert.Equal(t, "name", currentKey(t, s))
	assert.Equal(t, "already on the first page", s.statusBar.Message())

	send(s, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "review", currentKey(t, s))
	assert.Equal(t, "last page: ctrl+s to submit", s.statusBar.Message())
}

func TestShell_CloseResetsWizard(t *testing.T) {
	s := newTestShell(t)
	send(s, runes("abc"))

	cmd := send(s, escape)
	require.NotNil(t, cmd)
	assert.True(t, s.Closed())
	assert.False(t, s.Result().Submitted)
	assert.Empty(t, s.Coordinator().Pages())
	_, ok := s.Coordinator().CurrentPage()
	assert.False(t, ok)
	assert.Empty(t, s.View())
}

func TestShell_ScrollsCurrentPageIntoView(t *testing.T) {
	cfg := deployConfig()
	cfg.Scroll.Offset = 0
	s, err := NewShell(cfg, nil)
	require.NoError(t, err)
	s.Init()
	s.Update(tea.WindowSizeMsg{Width: 80, Height: 8})

	send(s, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, "review", currentKey(t, s))

	body := ansi.Strip(s.body.View())
	assert.Contains(t, body, "Review")
	assert.NotContains(t, body, "Name")
	assert.Positive(t, s.body.YOffset)
}

func TestViewportScroller_IgnoresOtherContainers(t *testing.T) {
	sc := newViewportScroller("body")
	sc.ScrollTo("a", "other", 0)
	assert.Empty(t, sc.pending)

	sc.ScrollTo("a", "body", 3)
	assert.Equal(t, "a", sc.pending)
	assert.Equal(t, 3, sc.offset)
}

func TestNewShell_RejectsAllHiddenPages(t *testing.T) {
	cfg := config.Config{Pages: []config.PageDef{{Key: "a", Kind: config.KindInput, Hidden: true}}}
	_, err := NewShell(cfg, nil)
	require.ErrorIs(t, err, wizard.ErrNoAdjacentPage)
}

package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/tui/components"
	"github.com/interpretive-systems/pagewizard/internal/tui/steps"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// Result is what the wizard collected when it closed.
type Result struct {
	Submitted bool              `yaml:"submitted"`
	Values    map[string]string `yaml:"values,omitempty"`
}

// Shell is the modal wizard host. It mounts the page steps, routes keys and
// gates submit on the coordinator's completion state.
type Shell struct {
	coord    *wizard.Coordinator
	steps    []steps.Step
	byKey    map[string]steps.Step
	active   string
	scroller *viewportScroller

	body      viewport.Model
	layout    *Layout
	keys      *KeyHandler
	pageList  *components.PageList
	statusBar *components.StatusBar
	theme     Theme
	logger    *slog.Logger

	result Result
	closed bool
}

// NewShell creates a shell for cfg and mounts every page.
func NewShell(cfg config.Config, logger *slog.Logger) (*Shell, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	container := cfg.Scroll.Container
	if container == "" {
		container = wizard.DefaultContainer
	}
	scroller := newViewportScroller(container)
	coord := wizard.New(
		wizard.WithScroller(scroller),
		wizard.WithScrollOffset(cfg.Scroll.Offset),
		wizard.WithContainer(container),
		wizard.WithLogger(logger),
	)
	coord.SetHeading(cfg.Heading)

	stps, err := steps.FromConfig(cfg)
	if err != nil {
		return nil, err
	}

	s := &Shell{
		coord:     coord,
		steps:     stps,
		byKey:     make(map[string]steps.Step, len(stps)),
		scroller:  scroller,
		body:      viewport.New(0, 0),
		layout:    NewLayout(),
		keys:      NewKeyHandler(),
		statusBar: components.NewStatusBar(),
		theme:     GetTheme(cfg.Theme),
		logger:    logger,
	}
	s.pageList = components.NewPageList(s.stylePageLine)

	for _, st := range stps {
		if err := st.Mount(coord); err != nil {
			return nil, err
		}
		s.byKey[st.Key()] = st
	}
	if _, ok := coord.CurrentPage(); !ok {
		if err := coord.NextPage(false); err != nil {
			return nil, fmt.Errorf("no rendered pages: %w", err)
		}
	}
	return s, nil
}

// Coordinator returns the shell's page registry.
func (s *Shell) Coordinator() *wizard.Coordinator {
	return s.coord
}

// Result returns what was collected. Values are only set after a submit.
func (s *Shell) Result() Result {
	return s.result
}

// Closed reports whether the wizard has been closed or submitted.
func (s *Shell) Closed() bool {
	return s.closed
}

// Init focuses the current page.
func (s *Shell) Init() tea.Cmd {
	return s.syncActive()
}

// Update routes messages.
func (s *Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.layout.SetSize(msg.Width, msg.Height)
		s.relayout()
		return s, nil
	case tea.KeyMsg:
		if s.closed {
			return s, tea.Quit
		}
		cmd := s.handleKey(msg)
		if s.closed {
			return s, tea.Quit
		}
		cmd = tea.Batch(cmd, s.syncActive())
		s.relayout()
		return s, cmd
	}
	return s, nil
}

func (s *Shell) handleKey(msg tea.KeyMsg) tea.Cmd {
	s.statusBar.SetMessage("")
	switch s.keys.Handle(msg) {
	case ActionQuit, ActionClose:
		s.close()
		return nil
	case ActionNext:
		s.navigate(steps.ActionNext)
		return nil
	case ActionBack:
		s.navigate(steps.ActionBack)
		return nil
	case ActionSubmit:
		s.submit()
		return nil
	case ActionPageDown:
		s.body.ViewDown()
		return nil
	case ActionPageUp:
		s.body.ViewUp()
		return nil
	}

	st := s.currentStep()
	if st == nil {
		return nil
	}
	act, cmd, err := st.HandleKey(s.coord, msg)
	if err != nil {
		s.logger.Error("page key handling failed", "page", st.Key(), "error", err)
		s.statusBar.SetMessage(s.theme.ErrorText("Error: ") + err.Error())
		return cmd
	}
	switch act {
	case steps.ActionNext, steps.ActionBack:
		s.navigate(act)
	case steps.ActionSubmit:
		s.submit()
	case steps.ActionClose:
		s.close()
	}
	return cmd
}

func (s *Shell) navigate(dir steps.Action) {
	var err error
	if dir == steps.ActionBack {
		err = s.coord.PrevPage(false)
	} else {
		err = s.coord.NextPage(false)
	}
	if errors.Is(err, wizard.ErrNoAdjacentPage) {
		if dir == steps.ActionBack {
			s.statusBar.SetMessage("already on the first page")
		} else {
			s.statusBar.SetMessage("last page: ctrl+s to submit")
		}
		return
	}
	if err != nil {
		s.statusBar.SetMessage(s.theme.ErrorText("Error: ") + err.Error())
	}
}

func (s *Shell) submit() {
	if !s.coord.IsComplete() {
		if s.coord.AllPagesVisited() {
			s.statusBar.SetMessage("some pages have unconfirmed changes")
		} else {
			s.statusBar.SetMessage("required pages are incomplete")
		}
		return
	}
	values := make(map[string]string)
	for _, p := range s.coord.RenderedPages() {
		if st, ok := s.byKey[p.Key]; ok && st.Value() != "" {
			values[p.Key] = st.Value()
		}
	}
	s.result = Result{Submitted: true, Values: values}
	s.logger.Info("wizard submitted", "heading", s.coord.Heading(), "pages", len(values))
	s.close()
}

// close tears the session down; the coordinator must not leak into the next wizard.
func (s *Shell) close() {
	if st := s.currentStep(); st != nil {
		st.Leave()
	}
	s.coord.ResetWizard()
	s.active = ""
	s.closed = true
	s.logger.Debug("wizard closed", "submitted", s.result.Submitted)
}

func (s *Shell) currentStep() steps.Step {
	p, ok := s.coord.CurrentPage()
	if !ok {
		return nil
	}
	return s.byKey[p.Key]
}

// syncActive calls Leave and Enter when the current page changed.
func (s *Shell) syncActive() tea.Cmd {
	st := s.currentStep()
	key := ""
	if st != nil {
		key = st.Key()
	}
	if key == s.active {
		return nil
	}
	if prev, ok := s.byKey[s.active]; ok {
		prev.Leave()
	}
	s.active = key
	if st == nil {
		return nil
	}
	return st.Enter()
}

func (s *Shell) relayout() {
	if s.layout.Width() == 0 || s.closed {
		return
	}
	width := s.layout.RightWidth()
	s.body.Width = width
	s.body.Height = s.layout.ContentHeight()

	pages := s.coord.RenderedPages()
	waypoints := make(map[string]int, len(pages))
	var lines []string
	for _, p := range pages {
		st, ok := s.byKey[p.Key]
		if !ok {
			continue
		}
		waypoints[p.Key] = len(lines)
		lines = append(lines, s.pageTitle(p))
		lines = append(lines, st.Render(width, p.State.Current)...)
		lines = append(lines, "")
	}
	s.body.SetContent(strings.Join(lines, "\n"))
	s.scroller.apply(&s.body, waypoints)

	s.pageList.SetPages(pages)
	s.statusBar.SetProgress(s.progress(pages))
}

func (s *Shell) pageTitle(p wizard.Page) string {
	title := components.PageStatusLabel(p.State) + " " + p.Label
	if p.State.Current {
		return s.theme.CurrentText(title)
	}
	return title
}

func (s *Shell) stylePageLine(p wizard.Page, line string) string {
	switch {
	case p.State.Current:
		return s.theme.CurrentText(line)
	case p.State.Dirty:
		return s.theme.DirtyText(line)
	case p.State.Done:
		return s.theme.DoneText(line)
	}
	return line
}

func (s *Shell) progress(pages []wizard.Page) string {
	var req, done int
	for _, p := range pages {
		if !p.State.Required {
			continue
		}
		req++
		if p.State.Done && !p.State.Dirty {
			done++
		}
	}
	out := fmt.Sprintf("required %d/%d", done, req)
	if s.coord.IsComplete() {
		out += " · ready"
	}
	return out
}

// View renders the shell.
func (s *Shell) View() string {
	if s.closed {
		return ""
	}
	if s.layout.Width() == 0 || s.layout.Height() == 0 {
		return "Loading..."
	}
	left := s.pageList.Render(s.layout.ContentHeight())
	right := strings.Split(s.body.View(), "\n")
	return s.layout.RenderFrame(s.coord.Heading(), left, right, s.statusBar.Render(s.layout.Width()), s.theme)
}

// Run runs the wizard in the terminal and returns what it collected.
func Run(cfg config.Config, logger *slog.Logger) (Result, error) {
	s, err := NewShell(cfg, logger)
	if err != nil {
		return Result{}, err
	}
	p := tea.NewProgram(s, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	sh, ok := final.(*Shell)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	if !sh.Closed() {
		sh.close()
	}
	return sh.Result(), nil
}

package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// Summary is one answered page shown on a review page.
type Summary struct {
	Label string
	Value string
}

// ReviewStep lists the collected answers. It completes as soon as it is viewed.
type ReviewStep struct {
	def     config.PageDef
	summary func(visible func(key string) bool) []Summary
	coord   *wizard.Coordinator
}

// NewReviewStep creates a new review step.
func NewReviewStep(def config.PageDef, summary func(visible func(key string) bool) []Summary) *ReviewStep {
	def.MarkCompleteOnView = true
	return &ReviewStep{def: def, summary: summary}
}

// Key returns the page key.
func (s *ReviewStep) Key() string { return s.def.Key }

// Label returns the page label.
func (s *ReviewStep) Label() string { return s.def.DisplayLabel() }

// Mount registers the page and keeps the coordinator to filter hidden answers.
func (s *ReviewStep) Mount(c *wizard.Coordinator) error {
	s.coord = c
	return mount(c, s.def)
}

// Enter does nothing.
func (s *ReviewStep) Enter() tea.Cmd { return nil }

// Leave does nothing.
func (s *ReviewStep) Leave() {}

// HandleKey submits on enter.
func (s *ReviewStep) HandleKey(_ *wizard.Coordinator, msg tea.KeyMsg) (Action, tea.Cmd, error) {
	switch msg.String() {
	case "enter", "y":
		return ActionSubmit, nil, nil
	case "b":
		return ActionBack, nil, nil
	}
	return ActionContinue, nil, nil
}

// Render renders the answers.
func (s *ReviewStep) Render(width int, active bool) []string {
	items := s.summary(s.visible)
	if len(items) == 0 {
		return []string{lipgloss.NewStyle().Faint(true).Render("Nothing answered yet")}
	}
	lines := make([]string, 0, len(items)+1)
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("  %s: %s", it.Label, it.Value))
	}
	if active {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render("enter/y: submit, b: back"))
	}
	return lines
}

func (s *ReviewStep) visible(key string) bool {
	if s.coord == nil {
		return false
	}
	p, err := s.coord.GetPage(key)
	return err == nil && p.State.Rendered
}

// Value is always empty.
func (s *ReviewStep) Value() string { return "" }

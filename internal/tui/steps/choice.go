package steps

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// ChoiceStep picks one option. Picking an option shows the pages it
// includes and hides the pages included by the other options.
type ChoiceStep struct {
	def    config.PageDef
	index  int
	picked string
}

// NewChoiceStep creates a new choice step.
func NewChoiceStep(def config.PageDef) *ChoiceStep {
	return &ChoiceStep{def: def}
}

// Key returns the page key.
func (s *ChoiceStep) Key() string { return s.def.Key }

// Label returns the page label.
func (s *ChoiceStep) Label() string { return s.def.DisplayLabel() }

// Mount registers the page.
func (s *ChoiceStep) Mount(c *wizard.Coordinator) error { return mount(c, s.def) }

// Enter does nothing; the choice list has no focus state.
func (s *ChoiceStep) Enter() tea.Cmd { return nil }

// Leave does nothing.
func (s *ChoiceStep) Leave() {}

// HandleKey moves the cursor and picks options.
func (s *ChoiceStep) HandleKey(c *wizard.Coordinator, msg tea.KeyMsg) (Action, tea.Cmd, error) {
	switch msg.String() {
	case "j", "down":
		if s.index < len(s.def.Options)-1 {
			s.index++
		}
	case "k", "up":
		if s.index > 0 {
			s.index--
		}
	case "enter", " ":
		if len(s.def.Options) == 0 {
			return ActionContinue, nil, nil
		}
		if err := s.pick(c, s.def.Options[s.index]); err != nil {
			return ActionContinue, nil, err
		}
		return ActionNext, nil, nil
	}
	return ActionContinue, nil, nil
}

func (s *ChoiceStep) pick(c *wizard.Coordinator, option string) error {
	show := s.def.Includes[strings.ToLower(option)]
	for opt, targets := range s.def.Includes {
		if strings.EqualFold(opt, option) {
			continue
		}
		for _, key := range targets {
			if containsKey(show, key) {
				continue
			}
			if err := c.ExcludePage(key); err != nil {
				return fmt.Errorf("option %q: %w", option, err)
			}
		}
	}
	for _, key := range show {
		if err := c.IncludePage(key); err != nil {
			return fmt.Errorf("option %q: %w", option, err)
		}
	}
	s.picked = option
	if err := c.MarkComplete(s.def.Key); err != nil {
		return err
	}
	return c.MarkClean(s.def.Key)
}

// Render renders the option list.
func (s *ChoiceStep) Render(width int, active bool) []string {
	lines := make([]string, 0, len(s.def.Options)+1)
	if s.def.Prompt != "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(s.def.Prompt))
	}
	for i, opt := range s.def.Options {
		cur := "  "
		if active && i == s.index {
			cur = "> "
		}
		mark := "( )"
		if opt == s.picked {
			mark = "(•)"
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", cur, mark, opt))
	}
	return lines
}

// Value returns the picked option.
func (s *ChoiceStep) Value() string {
	return s.picked
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

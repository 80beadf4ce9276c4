package steps

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// InputStep collects a single line of text.
type InputStep struct {
	def   config.PageDef
	input textinput.Model
	err   string
}

// NewInputStep creates a new input step.
func NewInputStep(def config.PageDef) *InputStep {
	ti := textinput.New()
	ti.Placeholder = def.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 0
	return &InputStep{def: def, input: ti}
}

// Key returns the page key.
func (s *InputStep) Key() string { return s.def.Key }

// Label returns the page label.
func (s *InputStep) Label() string { return s.def.DisplayLabel() }

// Mount registers the page.
func (s *InputStep) Mount(c *wizard.Coordinator) error { return mount(c, s.def) }

// Enter focuses the text input.
func (s *InputStep) Enter() tea.Cmd {
	return s.input.Focus()
}

// Leave blurs the text input.
func (s *InputStep) Leave() {
	s.input.Blur()
}

// HandleKey edits the value. Any edit marks the page dirty; enter validates
// and completes it.
func (s *InputStep) HandleKey(c *wizard.Coordinator, msg tea.KeyMsg) (Action, tea.Cmd, error) {
	if msg.Type == tea.KeyEnter {
		if s.def.Required && strings.TrimSpace(s.input.Value()) == "" {
			s.err = "a value is required"
			return ActionContinue, nil, c.MarkIncomplete(s.def.Key)
		}
		s.err = ""
		if err := c.MarkComplete(s.def.Key); err != nil {
			return ActionContinue, nil, err
		}
		return ActionNext, nil, c.MarkClean(s.def.Key)
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		return ActionContinue, cmd, c.MarkDirty(s.def.Key)
	}
	return ActionContinue, cmd, nil
}

// Render renders the prompt and the input.
func (s *InputStep) Render(width int, active bool) []string {
	var lines []string
	if s.def.Prompt != "" {
		lines = append(lines, lipgloss.NewStyle().Faint(true).Render(s.def.Prompt))
	}
	if active {
		if w := width - lipgloss.Width(s.input.Prompt) - 1; w > 0 {
			s.input.Width = w
		}
		lines = append(lines, s.input.View())
	} else {
		v := s.input.Value()
		if v == "" {
			v = lipgloss.NewStyle().Faint(true).Render("(empty)")
		}
		lines = append(lines, "  "+v)
	}
	if s.err != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render("Error: ")+s.err)
	}
	return lines
}

// Value returns the trimmed input.
func (s *InputStep) Value() string {
	return strings.TrimSpace(s.input.Value())
}

package steps

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/pagewizard/internal/config"
	"github.com/interpretive-systems/pagewizard/internal/wizard"
)

// Action represents what the step wants the shell to do.
type Action int

const (
	ActionContinue Action = iota // Stay on the current page
	ActionNext                   // Move to the next rendered page
	ActionBack                   // Move to the previous rendered page
	ActionSubmit                 // Try to submit the wizard
	ActionClose                  // Close the wizard
)

// Step is the view of one wizard page. Steps never reference each other;
// they report their status to the coordinator by key.
type Step interface {
	// Key returns the page key the step registers under.
	Key() string

	// Label returns the display name.
	Label() string

	// Mount registers the page with the coordinator.
	Mount(c *wizard.Coordinator) error

	// Enter is called when the page becomes current.
	Enter() tea.Cmd

	// Leave is called when the page stops being current.
	Leave()

	// HandleKey processes keyboard input while the page is current.
	HandleKey(c *wizard.Coordinator, msg tea.KeyMsg) (Action, tea.Cmd, error)

	// Render returns the page body lines.
	Render(width int, active bool) []string

	// Value returns the answer collected by the page.
	Value() string
}

// FromConfig builds one step per page definition, in declaration order.
func FromConfig(cfg config.Config) ([]Step, error) {
	out := make([]Step, 0, len(cfg.Pages))
	for _, def := range cfg.Pages {
		switch def.Kind {
		case config.KindInput:
			out = append(out, NewInputStep(def))
		case config.KindChoice:
			out = append(out, NewChoiceStep(def))
		case config.KindReview:
			out = append(out, NewReviewStep(def, summarize(&out)))
		default:
			return nil, fmt.Errorf("page %q: unknown kind %q", def.Key, def.Kind)
		}
	}
	return out, nil
}

// summarize reports the answers of every visible step that has one.
func summarize(all *[]Step) func(visible func(key string) bool) []Summary {
	return func(visible func(key string) bool) []Summary {
		var out []Summary
		for _, s := range *all {
			if !visible(s.Key()) {
				continue
			}
			if v := s.Value(); v != "" {
				out = append(out, Summary{Label: s.Label(), Value: v})
			}
		}
		return out
	}
}

func mount(c *wizard.Coordinator, def config.PageDef) error {
	if err := c.RegisterPage(def.Key, def.DisplayLabel(), def.State()); err != nil {
		return fmt.Errorf("mount %s: %w", def.Key, err)
	}
	return nil
}

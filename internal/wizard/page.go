package wizard

// PageState is the completion and visibility state of a single page.
type PageState struct {
	Done               bool
	Blocked            bool
	Rendered           bool
	Current            bool
	Dirty              bool
	MarkCompleteOnView bool
	Required           bool
}

// DefaultPageState returns the state used when a page registers without one:
// rendered, blocked and otherwise unset.
func DefaultPageState() PageState {
	return PageState{
		Blocked:  true,
		Rendered: true,
	}
}

// Page is a snapshot of one registered page. Mutations go through the
// Coordinator by key; holding a Page does not observe later changes.
type Page struct {
	Key   string
	Label string
	State PageState
}

type entry struct {
	key   string
	label string
	state PageState
}

func (e *entry) snapshot() Page {
	return Page{Key: e.key, Label: e.label, State: e.state}
}

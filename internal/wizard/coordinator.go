// Package wizard tracks the pages of a multi-step modal wizard: which pages
// exist, which are rendered, which one is current, and whether the required
// ones are complete.
//
// A Coordinator belongs to one wizard session. Page views register with it on
// mount and report their own status by key; the modal shell queries it to
// gate navigation and submit. It is driven from a single event loop and is
// not safe for concurrent use.
package wizard

import (
	"fmt"
	"io"
	"log/slog"
)

// Coordinator is the page registry of one wizard session.
type Coordinator struct {
	pages   []*entry
	current *entry
	heading string

	scroller  Scroller
	offset    int
	container string
	logger    *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithScroller sets the capability used to bring the current page into view.
func WithScroller(s Scroller) Option {
	return func(c *Coordinator) {
		if s != nil {
			c.scroller = s
		}
	}
}

// WithScrollOffset sets the offset passed to the scroller.
func WithScrollOffset(offset int) Option {
	return func(c *Coordinator) { c.offset = offset }
}

// WithContainer sets the container name passed to the scroller.
func WithContainer(name string) Option {
	return func(c *Coordinator) { c.container = name }
}

// WithLogger sets the logger for navigation events.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty Coordinator for a new wizard session.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		scroller:  NopScroller{},
		offset:    DefaultScrollOffset,
		container: DefaultContainer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetHeading sets the wizard heading.
func (c *Coordinator) SetHeading(heading string) {
	c.heading = heading
}

// Heading returns the wizard heading, empty if unset.
func (c *Coordinator) Heading() string {
	return c.heading
}

// GetPage returns a snapshot of the page registered under key.
func (c *Coordinator) GetPage(key string) (Page, error) {
	e, err := c.lookup(key)
	if err != nil {
		return Page{}, err
	}
	return e.snapshot(), nil
}

// MarkDirty flags the page as modified.
func (c *Coordinator) MarkDirty(key string) error {
	return c.update(key, func(s *PageState) { s.Dirty = true })
}

// MarkClean clears the page's modified flag.
func (c *Coordinator) MarkClean(key string) error {
	return c.update(key, func(s *PageState) { s.Dirty = false })
}

// MarkComplete flags the page as done.
func (c *Coordinator) MarkComplete(key string) error {
	return c.update(key, func(s *PageState) { s.Done = true })
}

// MarkIncomplete clears the page's done flag.
func (c *Coordinator) MarkIncomplete(key string) error {
	return c.update(key, func(s *PageState) { s.Done = false })
}

// RegisterPage appends a page to the registry and re-renders. Without a
// state argument the page gets DefaultPageState. A supplied Current flag is
// ignored; only navigation selects the current page.
func (c *Coordinator) RegisterPage(key, label string, state ...PageState) error {
	if key == "" {
		return ErrEmptyKey
	}
	if _, err := c.lookup(key); err == nil {
		return fmt.Errorf("%w: %q", ErrDuplicatePage, key)
	}
	st := DefaultPageState()
	if len(state) > 0 {
		st = state[0]
	}
	st.Current = false
	c.pages = append(c.pages, &entry{key: key, label: label, state: st})
	c.logger.Debug("wizard page registered", "page", key, "rendered", st.Rendered)
	c.RenderPages()
	return nil
}

// SetCurrentPage makes the page current, clears its dirty flag, completes it
// if it is marked complete-on-view, and scrolls it into view unless
// skipScroll is set.
func (c *Coordinator) SetCurrentPage(key string, skipScroll bool) error {
	e, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !e.state.Rendered {
		return fmt.Errorf("%w: %q", ErrPageNotRendered, key)
	}
	c.setCurrent(e, skipScroll)
	return nil
}

// CurrentPage returns a snapshot of the current page, if any.
func (c *Coordinator) CurrentPage() (Page, bool) {
	if c.current == nil {
		return Page{}, false
	}
	return c.current.snapshot(), true
}

// RenderPages reconciles navigation with the rendered pages. A lone rendered
// page becomes current. A current page that is no longer rendered hands over
// to the next rendered page, else the previous one, else nothing.
func (c *Coordinator) RenderPages() {
	rendered := c.rendered()
	if len(rendered) == 1 {
		c.setCurrent(rendered[0], false)
		return
	}
	if c.current != nil && !c.current.state.Rendered {
		c.setCurrent(c.neighbour(c.current), false)
	}
}

// SetRendered shows or hides the page and re-renders.
func (c *Coordinator) SetRendered(key string, rendered bool) error {
	if err := c.update(key, func(s *PageState) { s.Rendered = rendered }); err != nil {
		return err
	}
	c.RenderPages()
	return nil
}

// IncludePage shows the page.
func (c *Coordinator) IncludePage(key string) error {
	return c.SetRendered(key, true)
}

// ExcludePage hides the page.
func (c *Coordinator) ExcludePage(key string) error {
	return c.SetRendered(key, false)
}

// IsComplete reports whether every rendered required page is done and not
// dirty. It is true when no rendered page is required.
func (c *Coordinator) IsComplete() bool {
	for _, e := range c.rendered() {
		if e.state.Required && (!e.state.Done || e.state.Dirty) {
			return false
		}
	}
	return true
}

// AllPagesVisited reports whether every rendered required page is done,
// regardless of dirtiness.
func (c *Coordinator) AllPagesVisited() bool {
	for _, e := range c.rendered() {
		if e.state.Required && !e.state.Done {
			return false
		}
	}
	return true
}

// Pages returns snapshots of all registered pages in registration order.
func (c *Coordinator) Pages() []Page {
	out := make([]Page, 0, len(c.pages))
	for _, e := range c.pages {
		out = append(out, e.snapshot())
	}
	return out
}

// RenderedPages returns snapshots of the rendered pages in registration order.
func (c *Coordinator) RenderedPages() []Page {
	rendered := c.rendered()
	out := make([]Page, 0, len(rendered))
	for _, e := range rendered {
		out = append(out, e.snapshot())
	}
	return out
}

// NextPage moves to the rendered page after the current one, or to the
// first rendered page when none is current.
func (c *Coordinator) NextPage(skipScroll bool) error {
	return c.step(1, skipScroll)
}

// PrevPage moves to the rendered page before the current one.
func (c *Coordinator) PrevPage(skipScroll bool) error {
	return c.step(-1, skipScroll)
}

// ResetWizard empties the registry and clears the current page and heading.
func (c *Coordinator) ResetWizard() {
	c.pages = nil
	c.current = nil
	c.heading = ""
	c.logger.Debug("wizard reset")
}

// setCurrent is the only writer of the Current flag.
func (c *Coordinator) setCurrent(e *entry, skipScroll bool) {
	for _, p := range c.pages {
		p.state.Current = p == e
	}
	c.current = e
	if e == nil {
		c.logger.Debug("wizard has no current page")
		return
	}
	e.state.Dirty = false
	if e.state.MarkCompleteOnView {
		e.state.Done = true
	}
	c.logger.Debug("wizard page entered", "page", e.key, "done", e.state.Done)
	if !skipScroll {
		c.scroller.ScrollTo(e.key, c.container, c.offset)
	}
}

func (c *Coordinator) step(delta int, skipScroll bool) error {
	rendered := c.rendered()
	idx := -1
	for i, e := range rendered {
		if e == c.current {
			idx = i
			break
		}
	}
	next := idx + delta
	if idx < 0 && delta > 0 {
		next = 0
	}
	if next < 0 || next >= len(rendered) {
		return ErrNoAdjacentPage
	}
	c.setCurrent(rendered[next], skipScroll)
	return nil
}

// neighbour finds the closest rendered page to e, preferring later pages.
func (c *Coordinator) neighbour(e *entry) *entry {
	idx := -1
	for i, p := range c.pages {
		if p == e {
			idx = i
			break
		}
	}
	for i := idx + 1; i < len(c.pages); i++ {
		if c.pages[i].state.Rendered {
			return c.pages[i]
		}
	}
	for i := idx - 1; i >= 0; i-- {
		if c.pages[i].state.Rendered {
			return c.pages[i]
		}
	}
	return nil
}

func (c *Coordinator) rendered() []*entry {
	var out []*entry
	for _, e := range c.pages {
		if e.state.Rendered {
			out = append(out, e)
		}
	}
	return out
}

func (c *Coordinator) lookup(key string) (*entry, error) {
	for _, e := range c.pages {
		if e.key == key {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrPageNotFound, key)
}

func (c *Coordinator) update(key string, fn func(*PageState)) error {
	e, err := c.lookup(key)
	if err != nil {
		return err
	}
	fn(&e.state)
	return nil
}

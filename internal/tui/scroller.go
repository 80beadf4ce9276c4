package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
)

// viewportScroller implements wizard.Scroller for the page body viewport.
// Requests are recorded and applied on the next layout pass, once the
// waypoint line of every rendered page is known.
type viewportScroller struct {
	container string
	pending   string
	offset    int
}

func newViewportScroller(container string) *viewportScroller {
	return &viewportScroller{container: container}
}

// ScrollTo records the target waypoint. Requests for other containers are dropped.
func (s *viewportScroller) ScrollTo(target, container string, offset int) {
	if container != s.container {
		return
	}
	s.pending = target
	s.offset = offset
}

// apply scrolls vp so the pending waypoint sits offset lines below the top.
func (s *viewportScroller) apply(vp *viewport.Model, waypoints map[string]int) bool {
	if s.pending == "" {
		return false
	}
	line, ok := waypoints[s.pending]
	s.pending = ""
	if !ok {
		return false
	}
	y := line - s.offset
	if y < 0 {
		y = 0
	}
	vp.SetYOffset(y)
	return true
}

package wizard

// DefaultScrollOffset is the distance kept between the top of the scroll
// container and a page's waypoint. It matches the height of the fixed
// header above the step body in the classic modal layout.
const DefaultScrollOffset = 143

// DefaultContainer names the scroll container holding the page waypoints.
const DefaultContainer = "waypoint-container"

// Scroller brings the waypoint tagged target into view within container,
// leaving offset units above it. Calls are fire-and-forget.
type Scroller interface {
	ScrollTo(target, container string, offset int)
}

// ScrollFunc adapts a plain function to the Scroller interface.
type ScrollFunc func(target, container string, offset int)

// ScrollTo calls f.
func (f ScrollFunc) ScrollTo(target, container string, offset int) {
	f(target, container, offset)
}

// NopScroller ignores scroll requests.
type NopScroller struct{}

// ScrollTo does nothing.
func (NopScroller) ScrollTo(string, string, int) {}

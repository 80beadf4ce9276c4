package wizard

import "errors"

var (
	// ErrPageNotFound is returned by every keyed operation whose key is not registered.
	ErrPageNotFound = errors.New("wizard page not found")
	// ErrDuplicatePage is returned when a key is registered twice in one session.
	ErrDuplicatePage = errors.New("wizard page already registered")
	// ErrEmptyKey is returned when registering a page without a key.
	ErrEmptyKey = errors.New("wizard page key is empty")
	// ErrPageNotRendered is returned when navigating to a hidden page.
	ErrPageNotRendered = errors.New("wizard page is not rendered")
	// ErrNoAdjacentPage is returned by NextPage and PrevPage at either end of the rendered pages.
	ErrNoAdjacentPage = errors.New("no adjacent rendered page")
)

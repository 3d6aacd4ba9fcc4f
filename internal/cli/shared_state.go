package cli

import (
	"github.com/alexanderramin/planhub/internal/route"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Location is the route of the page on top of the stack. Views that own
	// a query keep it in sync as their selection changes.
	Location route.Route

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width for wrapped text.
func (s *SharedState) ContentWidth() int {
	w := s.Width - 4
	if w < 20 {
		return 20
	}
	return w
}

// Package dropdown holds the suggestion dropdown's navigation state.
//
// The dropdown is either closed or open with an active row index in
// [None, N-1]. Arrow keys wrap around; recomputing the rows always resets
// the active index to None.
package dropdown

// None is the active index when no row is highlighted.
const None = -1

// State is the dropdown state machine. The zero value is closed.
type State struct {
	items  []string
	active int
	open   bool
}

// New returns a closed dropdown.
func New() State {
	return State{active: None}
}

// Show replaces the rows. A non-empty list opens the dropdown with nothing
// active; an empty list closes it.
func (s *State) Show(items []string) {
	if len(items) == 0 {
		s.Hide()
		return
	}
	s.items = append(s.items[:0:0], items...)
	s.active = None
	s.open = true
}

// Hide closes the dropdown and drops its rows.
func (s *State) Hide() {
	s.items = nil
	s.active = None
	s.open = false
}

// Down moves to the next row, wrapping from last to first, and returns the
// newly active text for previewing in the input.
func (s *State) Down() (string, bool) {
	if !s.open || len(s.items) == 0 {
		return "", false
	}
	s.active = (s.active + 1) % len(s.items)
	return s.items[s.active], true
}

// Up moves to the previous row, wrapping from first to last. From None it
// steps back as if from index -1.
func (s *State) Up() (string, bool) {
	if !s.open || len(s.items) == 0 {
		return "", false
	}
	n := len(s.items)
	s.active = (s.active - 1 + n) % n
	return s.items[s.active], true
}

// IsOpen reports whether the dropdown is visible.
func (s State) IsOpen() bool {
	return s.open
}

// Active returns the highlighted index, or None.
func (s State) Active() int {
	if !s.open {
		return None
	}
	return s.active
}

// Items returns a copy of the visible rows.
func (s State) Items() []string {
	return append([]string(nil), s.items...)
}

// Len returns the number of visible rows.
func (s State) Len() int {
	return len(s.items)
}

// Row returns the text of row i.
func (s State) Row(i int) (string, bool) {
	if !s.open || i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

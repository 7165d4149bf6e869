package seatmap

// Selection mediates the user's seat picks against the reserved set
// reported by the seat service.  The reserved set is loaded once per
// screen entry and never refreshed during the session; a stale read is
// arbitrated server-side when the booking is finally created.  Selected
// seats keep insertion order because the summary line renders them in
// click order.
type Selection struct {
	grid     Grid                // the grid picks are validated against
	reserved map[string]struct{} // seat IDs that can never be selected
	selected []string            // current picks in insertion order
}

// NewSelection builds a Selection over the given grid.  Reserved IDs that
// do not exist in the grid are kept in the set anyway; they can simply
// never match a toggle.
func NewSelection(grid Grid, reserved []string) *Selection {
	set := make(map[string]struct{}, len(reserved))
	for _, id := range reserved {
		set[id] = struct{}{}
	}
	return &Selection{grid: grid, reserved: set}
}

// Toggle selects the seat when unselected and deselects it when selected.
// Reserved seats and identities outside the grid are ignored without an
// error: a reserved seat is a disabled affordance, not a failure.  Toggle
// is its own inverse.
func (s *Selection) Toggle(seatID string) {
	if _, held := s.reserved[seatID]; held {
		return
	}
	if !s.grid.Contains(seatID) {
		return
	}
	for i, id := range s.selected {
		if id == seatID {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
	s.selected = append(s.selected, seatID)
}

// IsReserved reports whether the seat is in the reserved set.
func (s *Selection) IsReserved(seatID string) bool {
	_, ok := s.reserved[seatID]
	return ok
}

// IsSelected reports whether the seat is currently picked.
func (s *Selection) IsSelected(seatID string) bool {
	for _, id := range s.selected {
		if id == seatID {
			return true
		}
	}
	return false
}

// Selected returns the current picks in click order.  The returned slice
// is a copy; mutating it does not affect the selection.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

// Count returns the number of selected seats.
func (s *Selection) Count() int { return len(s.selected) }

// Clear drops every pick.  Used when the booking screen is abandoned;
// the reserved set is left untouched.
func (s *Selection) Clear() { s.selected = s.selected[:0] }

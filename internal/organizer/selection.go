package organizer

// noSelection is the sentinel index meaning "nothing selected".
const noSelection = -1

// Selection is the single cursor identifying which record the engine is
// currently operating on. Whenever set, it must be a valid index into
// the library in scope; the engine clears it on every return to a list
// screen so a stale index can never survive a delete.
type Selection struct {
	index int
}

// NewSelection returns a cleared selection.
func NewSelection() Selection {
	return Selection{index: noSelection}
}

// Set points the selection at index i.
func (s *Selection) Set(i int) {
	s.index = i
}

// Clear resets the selection to "nothing selected".
func (s *Selection) Clear() {
	s.index = noSelection
}

// Index returns the selected index and whether anything is selected.
func (s *Selection) Index() (int, bool) {
	if s.index == noSelection {
		return 0, false
	}
	return s.index, true
}

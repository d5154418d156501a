package organizer

import "testing"

func TestSelectionStartsCleared(t *testing.T) {
	s := NewSelection()
	if _, ok := s.Index(); ok {
		t.Error("new selection should be cleared")
	}
}

func TestSelectionSetAndClear(t *testing.T) {
	s := NewSelection()

	s.Set(3)
	if i, ok := s.Index(); !ok || i != 3 {
		t.Errorf("Index() = %d (%v), want 3", i, ok)
	}

	s.Clear()
	if _, ok := s.Index(); ok {
		t.Error("selection should be cleared")
	}
}

func TestSelectionZeroIsValid(t *testing.T) {
	s := NewSelection()
	s.Set(0)
	if i, ok := s.Index(); !ok || i != 0 {
		t.Errorf("Index() = %d (%v), want 0", i, ok)
	}
}

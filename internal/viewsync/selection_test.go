package viewsync

import (
	"testing"
)

func TestSelection(t *testing.T) {
	s := NewSelection(3)
	if _, _, ok := s.Active(); ok {
		t.Fatal("new selection should be empty")
	}

	s.Select(2, 4)
	c, i, ok := s.Active()
	if !ok || c != 2 || i != 4 {
		t.Errorf("Active: got (%d, %d, %v), want (2, 4, true)", c, i, ok)
	}

	s.Select(0, 0)
	if s[2] != NoSelection || s[0] != 0 {
		t.Errorf("Select should reset other clusters, got %v", s)
	}

	if !s.Clear() {
		t.Error("Clear should report a previous selection")
	}
	if s.Clear() {
		t.Error("second Clear should report nothing selected")
	}
}

func TestSelection_Clone(t *testing.T) {
	s := NewSelection(2)
	s.Select(1, 3)

	cp := s.Clone()
	cp[1] = NoSelection
	if s[1] != 3 {
		t.Errorf("Clone shares storage: %v", s)
	}
}

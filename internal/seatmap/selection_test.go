package seatmap

import (
	"reflect"
	"testing"
)

func newTestSelection(t *testing.T, reserved ...string) *Selection {
	t.Helper()
	g, err := Generate(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	return NewSelection(g, reserved)
}

func TestToggleSelectsAndKeepsOrder(t *testing.T) {
	s := newTestSelection(t)
	s.Toggle("B2")
	s.Toggle("A1")
	s.Toggle("C4")
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"B2", "A1", "C4"}) {
		t.Fatalf("selection order: got %v", got)
	}
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := newTestSelection(t)
	s.Toggle("A1")
	if !s.IsSelected("A1") {
		t.Fatal("toggle did not select")
	}
	s.Toggle("A1")
	if s.IsSelected("A1") {
		t.Fatal("second toggle did not deselect")
	}
	if got := s.Selected(); len(got) != 0 {
		t.Fatalf("double toggle should clear: got %v", got)
	}

	// Deselecting from the middle keeps the rest in order.
	s.Toggle("A1")
	s.Toggle("B2")
	s.Toggle("C3")
	s.Toggle("B2")
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"A1", "C3"}) {
		t.Fatalf("after middle deselect: got %v", got)
	}
}

func TestReservedSeatsNeverSelectable(t *testing.T) {
	s := newTestSelection(t, "A1", "A2", "B5")
	for i := 0; i < 3; i++ {
		s.Toggle("A1")
		s.Toggle("B5")
	}
	if s.Count() != 0 {
		t.Fatalf("reserved seats selected: %v", s.Selected())
	}
	if !s.IsReserved("A1") || s.IsReserved("C4") {
		t.Fatal("IsReserved misreports")
	}
}

func TestToggleIgnoresUnknownSeats(t *testing.T) {
	s := newTestSelection(t)
	s.Toggle("Z9")
	s.Toggle("H7") // one past the last column
	s.Toggle("")
	if s.Count() != 0 {
		t.Fatalf("unknown seats selected: %v", s.Selected())
	}
}

func TestClearDropsSelectionOnly(t *testing.T) {
	s := newTestSelection(t, "A1")
	s.Toggle("B2")
	s.Toggle("C3")
	s.Clear()
	if s.Count() != 0 {
		t.Fatal("clear left picks behind")
	}
	if !s.IsReserved("A1") {
		t.Fatal("clear must not touch the reserved set")
	}
}

func TestSelectedReturnsCopy(t *testing.T) {
	s := newTestSelection(t)
	s.Toggle("A1")
	got := s.Selected()
	got[0] = "H6"
	if s.Selected()[0] != "A1" {
		t.Fatal("Selected must return a copy")
	}
}

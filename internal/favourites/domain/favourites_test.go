package domain

import "testing"

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestToggle(t *testing.T) {
	s := EmptyState()

	if marked := s.Toggle(MarkerFavourite, 7); !marked {
		t.Error("first toggle should mark")
	}
	if !s.IsFavourite(7) {
		t.Error("IsFavourite(7) = false after toggle on")
	}
	if s.IsTasted(7) {
		t.Error("favourite toggle leaked into tasted set")
	}

	if marked := s.Toggle(MarkerFavourite, 7); marked {
		t.Error("second toggle should unmark")
	}
	if s.IsFavourite(7) {
		t.Error("IsFavourite(7) = true after toggle off")
	}
}

func TestToggleTastedIndependent(t *testing.T) {
	s := EmptyState()

	s.Toggle(MarkerTasted, 3)

	if !s.IsTasted(3) {
		t.Error("IsTasted(3) = false after toggle")
	}
	if s.IsFavourite(3) {
		t.Error("tasted toggle leaked into favourite set")
	}
}

func TestIDsSorted(t *testing.T) {
	s := NewState([]int{9, 2, 5}, []int{4, 1})

	if got := s.FavouriteIDs(); !equalInts(got, []int{2, 5, 9}) {
		t.Errorf("FavouriteIDs() = %v, want [2 5 9]", got)
	}
	if got := s.TastedIDs(); !equalInts(got, []int{1, 4}) {
		t.Errorf("TastedIDs() = %v, want [1 4]", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewState([]int{1}, nil)
	c := s.Clone()

	c.Toggle(MarkerFavourite, 2)

	if s.IsFavourite(2) {
		t.Error("mutating the clone changed the original")
	}
	if !c.IsFavourite(1) || !c.IsFavourite(2) {
		t.Error("clone missing expected IDs")
	}
}

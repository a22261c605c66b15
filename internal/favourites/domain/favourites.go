package domain

import (
	"context"
	"sort"
)

// Marker names the two per-device sets.
type Marker string

const (
	MarkerFavourite Marker = "favourite"
	MarkerTasted    Marker = "tasted"
)

// State holds one device's favourite and tasted flavour IDs. It is not safe
// for concurrent mutation; the caching repository serializes access.
type State struct {
	favourites map[int]bool
	tasted     map[int]bool
}

// NewState builds a state from persisted ID lists.
func NewState(favourites, tasted []int) *State {
	s := &State{
		favourites: make(map[int]bool, len(favourites)),
		tasted:     make(map[int]bool, len(tasted)),
	}
	for _, id := range favourites {
		s.favourites[id] = true
	}
	for _, id := range tasted {
		s.tasted[id] = true
	}
	return s
}

// EmptyState returns a state with both sets empty.
func EmptyState() *State {
	return NewState(nil, nil)
}

func (s *State) IsFavourite(id int) bool { return s.favourites[id] }
func (s *State) IsTasted(id int) bool    { return s.tasted[id] }

// Toggle flips membership of id in the marker's set and returns the new
// membership. Toggling twice restores the original state.
func (s *State) Toggle(marker Marker, id int) bool {
	set := s.favourites
	if marker == MarkerTasted {
		set = s.tasted
	}

	if set[id] {
		delete(set, id)
		return false
	}
	set[id] = true
	return true
}

// FavouriteIDs returns the favourite set as a sorted slice.
func (s *State) FavouriteIDs() []int { return sortedIDs(s.favourites) }

// TastedIDs returns the tasted set as a sorted slice.
func (s *State) TastedIDs() []int { return sortedIDs(s.tasted) }

// Clone returns an independent copy, used to hand out snapshots that outlive
// the repository lock.
func (s *State) Clone() *State {
	return NewState(s.FavouriteIDs(), s.TastedIDs())
}

func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// FavouritesRepository persists per-device state. Load is fail-soft: missing
// or unreadable data yields an empty state, never an error the caller has to
// branch on for the common path.
type FavouritesRepository interface {
	Load(ctx context.Context, deviceID string) (*State, error)
	Save(ctx context.Context, deviceID string, state *State) error
}

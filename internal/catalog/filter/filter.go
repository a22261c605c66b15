// Package filter is the consolidated filter/sort pipeline behind the flavour
// and location list endpoints. Everything here is a pure function of the
// catalog, a favourite-state snapshot, the criteria, the clock and the
// origin coordinate.
package filter

import (
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/geo"
	"github.com/cocoatrail/festival-api/internal/hours"
)

// SortKey selects the ordering of location results.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDistance SortKey = "distance"
)

// Criteria is the full set of list filters. The zero value filters nothing
// and sorts locations by name.
type Criteria struct {
	Query string

	FavouritesOnly  bool
	HideTasted      bool
	CurrentOnly     bool
	OpenNowOnly     bool
	VeganOnly       bool
	DairyFreeOnly   bool
	GlutenFreeOnly  bool
	NutFreeOnly     bool
	AlcoholFreeOnly bool

	SortBy SortKey
}

// FavouriteView is a read-only snapshot of a device's favourite and tasted
// sets.
type FavouriteView interface {
	IsFavourite(id int) bool
	IsTasted(id int) bool
}

type emptyView struct{}

func (emptyView) IsFavourite(int) bool { return false }
func (emptyView) IsTasted(int) bool    { return false }

// NoFavourites is the snapshot used when no device context is available.
var NoFavourites FavouriteView = emptyView{}

// FilterFlavours returns the flavours matching the criteria, in catalog
// order. Facets apply as an AND-chain in a fixed order so results are
// deterministic. The input slices are never mutated.
func FilterFlavours(flavours []domain.Flavour, locations []domain.Location, c Criteria, favs FavouriteView, now time.Time) []domain.Flavour {
	if favs == nil {
		favs = NoFavourites
	}
	locationByID := indexLocations(locations)

	result := make([]domain.Flavour, len(flavours))
	copy(result, flavours)

	if query := normalizeQuery(c.Query); query != "" {
		result = keepFlavours(result, func(f domain.Flavour) bool {
			if strings.Contains(strings.ToLower(f.Name), query) {
				return true
			}
			// A dangling location reference excludes the flavour from
			// location-name matching without dropping it from the catalog.
			loc, ok := locationByID[f.LocationID]
			return ok && strings.Contains(strings.ToLower(loc.Name), query)
		})
	}

	if c.FavouritesOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return favs.IsFavourite(f.ID) })
	}
	if c.HideTasted {
		result = keepFlavours(result, func(f domain.Flavour) bool { return !favs.IsTasted(f.ID) })
	}
	if c.CurrentOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return f.IsCurrent(now) })
	}
	if c.OpenNowOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool {
			loc, ok := locationByID[f.LocationID]
			if !ok {
				// Unknown location, same fail-open stance as unparseable hours.
				return true
			}
			return anyStoreOpen(*loc, now)
		})
	}
	if c.VeganOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return f.HasTag(domain.TagVegan) })
	}
	if c.DairyFreeOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return f.HasTag(domain.TagDairyFree) })
	}
	if c.GlutenFreeOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return f.HasTag(domain.TagGlutenFree) })
	}
	if c.NutFreeOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return !f.HasTag(domain.TagNuts) })
	}
	if c.AlcoholFreeOnly {
		result = keepFlavours(result, func(f domain.Flavour) bool { return !f.HasTag(domain.TagAlcoholic) })
	}

	return result
}

// FilterLocations returns the locations matching the criteria, ordered by
// the sort key. Ties keep catalog order. The input slices are never mutated.
func FilterLocations(locations []domain.Location, flavours []domain.Flavour, c Criteria, favs FavouriteView, now time.Time, origin geo.Coordinate) []domain.Location {
	if favs == nil {
		favs = NoFavourites
	}

	result := make([]domain.Location, len(locations))
	copy(result, locations)

	if query := normalizeQuery(c.Query); query != "" {
		result = keepLocations(result, func(l domain.Location) bool {
			if strings.Contains(strings.ToLower(l.Name), query) {
				return true
			}
			for _, s := range l.Stores {
				if strings.Contains(strings.ToLower(s.Address), query) {
					return true
				}
			}
			return false
		})
	}

	if c.FavouritesOnly {
		byLocation := indexFlavours(flavours)
		result = keepLocations(result, func(l domain.Location) bool {
			for _, f := range byLocation[l.ID] {
				if favs.IsFavourite(f.ID) {
					return true
				}
			}
			return false
		})
	}

	if c.OpenNowOnly {
		result = keepLocations(result, func(l domain.Location) bool { return anyStoreOpen(l, now) })
	}

	SortLocations(result, c.SortBy, origin)
	return result
}

// SortLocations orders locations in place by name (locale-aware, ignoring
// case) or by ascending distance from origin to each location's primary
// store. The sort is stable; locations without stores sort last under
// distance ordering.
func SortLocations(locations []domain.Location, key SortKey, origin geo.Coordinate) {
	switch key {
	case SortByDistance:
		type entry struct {
			loc domain.Location
			km  float64
		}
		entries := make([]entry, len(locations))
		for i, l := range locations {
			entries[i] = entry{loc: l, km: distanceTo(l, origin)}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].km < entries[j].km
		})
		for i := range entries {
			locations[i] = entries[i].loc
		}
	default:
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(locations, func(i, j int) bool {
			return c.CompareString(locations[i].Name, locations[j].Name) < 0
		})
	}
}

func distanceTo(l domain.Location, origin geo.Coordinate) float64 {
	store, ok := l.PrimaryStore()
	if !ok {
		return math.Inf(1)
	}
	return geo.DistanceKm(origin, store.Coordinate())
}

func anyStoreOpen(l domain.Location, now time.Time) bool {
	for _, s := range l.Stores {
		if hours.IsOpen(s.Hours, now) {
			return true
		}
	}
	return false
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func keepFlavours(in []domain.Flavour, pred func(domain.Flavour) bool) []domain.Flavour {
	out := in[:0]
	for _, f := range in {
		if pred(f) {
			out = append(out, f)
		}
	}
	return out
}

func keepLocations(in []domain.Location, pred func(domain.Location) bool) []domain.Location {
	out := in[:0]
	for _, l := range in {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}

func indexLocations(locations []domain.Location) map[int]*domain.Location {
	m := make(map[int]*domain.Location, len(locations))
	for i := range locations {
		m[locations[i].ID] = &locations[i]
	}
	return m
}

func indexFlavours(flavours []domain.Flavour) map[int][]domain.Flavour {
	m := make(map[int][]domain.Flavour)
	for _, f := range flavours {
		m[f.LocationID] = append(m[f.LocationID], f)
	}
	return m
}

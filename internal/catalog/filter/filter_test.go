package filter

import (
	"testing"
	"time"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/geo"
)

type stubView struct {
	favourites map[int]bool
	tasted     map[int]bool
}

func (v stubView) IsFavourite(id int) bool { return v.favourites[id] }
func (v stubView) IsTasted(id int) bool    { return v.tasted[id] }

func date(y int, m time.Month, d int) domain.Date {
	return domain.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// monday is inside every fixture availability window, at 10:00.
var monday = time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)

func fixtureLocations() []domain.Location {
	return []domain.Location{
		{
			ID:   1,
			Name: "Cocoa Cartel",
			Stores: []domain.Store{{
				Name:    "Gastown",
				Address: "312 Water St",
				Hours:   "Mon-Fri 8:00am - 6:00pm",
				Point:   [2]float64{49.284131, -123.108867},
			}},
		},
		{
			ID:   2,
			Name: "Velvet Whisk Bakery",
			Stores: []domain.Store{{
				Name:    "Main Street",
				Address: "4387 Main St",
				Hours:   "Wed-Sun 8:00am - 4:00pm, closed Mon",
				Point:   [2]float64{49.247829, -123.101028},
			}},
		},
		{
			ID:     3,
			Name:   "Pop-Up Patisserie",
			Stores: nil,
		},
	}
}

func fixtureFlavours() []domain.Flavour {
	return []domain.Flavour{
		{
			ID:         1,
			Name:       "Oat Milk Mocha",
			StartDate:  date(2026, 1, 17),
			EndDate:    date(2026, 2, 14),
			LocationID: 1,
			Tags:       []string{"Vegan", "Dairy-free"},
		},
		{
			ID:         2,
			Name:       "Hazelnut Gianduja",
			StartDate:  date(2026, 1, 17),
			EndDate:    date(2026, 2, 14),
			LocationID: 2,
			Tags:       []string{"Nuts"},
		},
		{
			ID:         3,
			Name:       "Raspberry Ruby",
			StartDate:  date(2026, 2, 10),
			EndDate:    date(2026, 2, 14),
			LocationID: 1,
			Tags:       []string{"Gluten-free"},
		},
		{
			ID:         4,
			Name:       "Bourbon Butterscotch",
			StartDate:  date(2026, 1, 17),
			EndDate:    date(2026, 2, 14),
			LocationID: 99,
			Tags:       []string{"Alcoholic"},
		},
	}
}

func flavourIDs(flavours []domain.Flavour) []int {
	ids := make([]int, len(flavours))
	for i, f := range flavours {
		ids[i] = f.ID
	}
	return ids
}

func locationIDs(locations []domain.Location) []int {
	ids := make([]int, len(locations))
	for i, l := range locations {
		ids[i] = l.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
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

func TestFilterFlavours(t *testing.T) {
	locations := fixtureLocations()
	flavours := fixtureFlavours()

	tests := []struct {
		name string
		c    Criteria
		favs FavouriteView
		want []int
	}{
		{
			name: "no criteria keeps catalog order",
			want: []int{1, 2, 3, 4},
		},
		{
			name: "vegan only",
			c:    Criteria{VeganOnly: true},
			want: []int{1},
		},
		{
			name: "dairy free only",
			c:    Criteria{DairyFreeOnly: true},
			want: []int{1},
		},
		{
			name: "nut free excludes tagged",
			c:    Criteria{NutFreeOnly: true},
			want: []int{1, 3, 4},
		},
		{
			name: "alcohol free excludes tagged",
			c:    Criteria{AlcoholFreeOnly: true},
			want: []int{1, 2, 3},
		},
		{
			name: "current only drops future windows",
			c:    Criteria{CurrentOnly: true},
			want: []int{1, 2, 4},
		},
		{
			name: "search by flavour name",
			c:    Criteria{Query: "mocha"},
			want: []int{1},
		},
		{
			name: "search by vendor name",
			c:    Criteria{Query: "cocoa cartel"},
			want: []int{1, 3},
		},
		{
			name: "search misses dangling location",
			c:    Criteria{Query: "bourbon"},
			want: []int{4},
		},
		{
			name: "favourites only",
			c:    Criteria{FavouritesOnly: true},
			favs: stubView{favourites: map[int]bool{2: true, 3: true}},
			want: []int{2, 3},
		},
		{
			name: "hide tasted",
			c:    Criteria{HideTasted: true},
			favs: stubView{tasted: map[int]bool{1: true, 4: true}},
			want: []int{2, 3},
		},
		{
			name: "open now drops closed vendors, keeps dangling",
			c:    Criteria{OpenNowOnly: true},
			want: []int{1, 3, 4},
		},
		{
			name: "facets combine as AND",
			c:    Criteria{CurrentOnly: true, NutFreeOnly: true, AlcoholFreeOnly: true},
			want: []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterFlavours(flavours, locations, tt.c, tt.favs, monday)
			if !equalIDs(flavourIDs(got), tt.want) {
				t.Errorf("got %v, want %v", flavourIDs(got), tt.want)
			}
		})
	}
}

func TestFilterFlavoursDoesNotMutateInput(t *testing.T) {
	flavours := fixtureFlavours()
	original := flavourIDs(flavours)

	FilterFlavours(flavours, fixtureLocations(), Criteria{VeganOnly: true}, nil, monday)

	if !equalIDs(flavourIDs(flavours), original) {
		t.Errorf("input mutated: %v, want %v", flavourIDs(flavours), original)
	}
}

func TestFilterFlavoursIdempotent(t *testing.T) {
	c := Criteria{CurrentOnly: true, NutFreeOnly: true}

	once := FilterFlavours(fixtureFlavours(), fixtureLocations(), c, nil, monday)
	twice := FilterFlavours(once, fixtureLocations(), c, nil, monday)

	if !equalIDs(flavourIDs(once), flavourIDs(twice)) {
		t.Errorf("second pass changed results: %v vs %v", flavourIDs(once), flavourIDs(twice))
	}
}

func TestFilterLocations(t *testing.T) {
	locations := fixtureLocations()
	flavours := fixtureFlavours()
	origin := geo.Coordinate{Latitude: 49.282729, Longitude: -123.120735}

	tests := []struct {
		name string
		c    Criteria
		favs FavouriteView
		want []int
	}{
		{
			name: "default sorts by name",
			want: []int{1, 3, 2},
		},
		{
			name: "search by address",
			c:    Criteria{Query: "water st"},
			want: []int{1},
		},
		{
			name: "search by vendor name",
			c:    Criteria{Query: "velvet"},
			want: []int{2},
		},
		{
			name: "open now drops closed and storeless",
			c:    Criteria{OpenNowOnly: true},
			want: []int{1},
		},
		{
			name: "favourites keeps vendors with a favourited flavour",
			c:    Criteria{FavouritesOnly: true},
			favs: stubView{favourites: map[int]bool{2: true}},
			want: []int{2},
		},
		{
			name: "distance sort puts storeless last",
			c:    Criteria{SortBy: SortByDistance},
			want: []int{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLocations(locations, flavours, tt.c, tt.favs, monday, origin)
			if !equalIDs(locationIDs(got), tt.want) {
				t.Errorf("got %v, want %v", locationIDs(got), tt.want)
			}
		})
	}
}

func TestSortLocationsByNameIgnoresCase(t *testing.T) {
	locations := []domain.Location{
		{ID: 1, Name: "zed cafe"},
		{ID: 2, Name: "Alpha Cart"},
		{ID: 3, Name: "mocha house"},
	}

	SortLocations(locations, SortByName, geo.Coordinate{})

	if !equalIDs(locationIDs(locations), []int{2, 3, 1}) {
		t.Errorf("got %v, want [2 3 1]", locationIDs(locations))
	}
}

func TestSortLocationsByDistanceIsStable(t *testing.T) {
	store := domain.Store{Point: [2]float64{49.28, -123.12}}
	locations := []domain.Location{
		{ID: 1, Name: "First", Stores: []domain.Store{store}},
		{ID: 2, Name: "Second", Stores: []domain.Store{store}},
		{ID: 3, Name: "Third", Stores: []domain.Store{store}},
	}

	SortLocations(locations, SortByDistance, geo.Coordinate{Latitude: 49.28, Longitude: -123.12})

	if !equalIDs(locationIDs(locations), []int{1, 2, 3}) {
		t.Errorf("equal distances reordered: %v", locationIDs(locations))
	}
}

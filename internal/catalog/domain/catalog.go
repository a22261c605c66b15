package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/cocoatrail/festival-api/internal/geo"
)

// ErrNotFound is returned when a catalog entity does not exist.
var ErrNotFound = errors.New("not found")

// Dietary and category tags used by the filter facets.
const (
	TagVegan      = "Vegan"
	TagDairyFree  = "Dairy-free"
	TagGlutenFree = "Gluten-free"
	TagNuts       = "Nuts"
	TagAlcoholic  = "Alcoholic"
)

// Date is a calendar timestamp from the catalog files. Values arrive either
// as full RFC3339 timestamps or bare YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return errors.New("unrecognized date: " + s)
}

// Store is one physical position of a vendor: address, free-text hours and a
// [latitude, longitude] point.
type Store struct {
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Hours   string     `json:"hours"`
	Point   [2]float64 `json:"point"`
}

// Coordinate returns the store position as a geo coordinate.
func (s Store) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: s.Point[0], Longitude: s.Point[1]}
}

// Location is a vendor with one or more physical stores.
type Location struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Instagram   string  `json:"instagram,omitempty"`
	Website     string  `json:"website,omitempty"`
	Stores      []Store `json:"stores"`
}

// PrimaryStore returns the first store in the list. Distance and open-now
// computations that need a single store for a location use this one.
func (l Location) PrimaryStore() (Store, bool) {
	if len(l.Stores) == 0 {
		return Store{}, false
	}
	return l.Stores[0], true
}

// Flavour is a festival menu item tied to one vendor location.
type Flavour struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	StartDate   Date     `json:"startDate"`
	EndDate     Date     `json:"endDate"`
	Description string   `json:"description"`
	LocationID  int      `json:"location"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the flavour carries the tag, ignoring case.
func (f Flavour) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// IsCurrent reports whether now falls inside the availability window,
// inclusive on both ends.
func (f Flavour) IsCurrent(now time.Time) bool {
	return !now.Before(f.StartDate.Time) && !now.After(f.EndDate.Time)
}

// CatalogRepository is the read-only contract over the static catalog. The
// catalog is loaded once at startup and never mutated.
type CatalogRepository interface {
	Flavours() []Flavour
	Locations() []Location
	FlavourByID(id int) (*Flavour, error)
	LocationByID(id int) (*Location, error)
	FlavoursByLocation(locationID int) []Flavour
	Version() string
}

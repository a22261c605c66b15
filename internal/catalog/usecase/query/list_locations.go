package query

import (
	"time"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/catalog/filter"
	"github.com/cocoatrail/festival-api/internal/geo"
)

// ListLocationsQuery lists locations through the filter pipeline, ordered by
// the criteria's sort key relative to Origin.
type ListLocationsQuery struct {
	Criteria   filter.Criteria
	Favourites filter.FavouriteView
	Now        time.Time
	Origin     geo.Coordinate
}

// LocationRow is a location plus its display distance from the origin.
type LocationRow struct {
	domain.Location
	DistanceKm float64 `json:"distance_km"`
	Distance   string  `json:"distance"`
}

// ListLocationsHandler handles location list queries.
type ListLocationsHandler struct {
	repo domain.CatalogRepository
}

// NewListLocationsHandler creates a list locations handler.
func NewListLocationsHandler(repo domain.CatalogRepository) *ListLocationsHandler {
	return &ListLocationsHandler{repo: repo}
}

// Handle executes the query. Locations without stores report a zero
// distance.
func (h *ListLocationsHandler) Handle(q ListLocationsQuery) []LocationRow {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	matched := filter.FilterLocations(h.repo.Locations(), h.repo.Flavours(), q.Criteria, q.Favourites, now, q.Origin)

	rows := make([]LocationRow, 0, len(matched))
	for _, l := range matched {
		row := LocationRow{Location: l}
		if store, ok := l.PrimaryStore(); ok {
			row.DistanceKm = geo.DistanceKm(q.Origin, store.Coordinate())
			row.Distance = geo.FormatDistance(row.DistanceKm)
		}
		rows = append(rows, row)
	}
	return rows
}

package query

import (
	"time"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/catalog/filter"
	"github.com/cocoatrail/festival-api/internal/geo"
	"github.com/cocoatrail/festival-api/internal/hours"
)

// GetMarkersQuery derives map markers for every store in the catalog,
// annotated with the requesting device's favourite state.
type GetMarkersQuery struct {
	Favourites filter.FavouriteView
	Now        time.Time
}

// Marker is one store flattened with its location context, ready for a map
// surface.
type Marker struct {
	LocationID          int            `json:"location_id"`
	LocationName        string         `json:"location_name"`
	LocationDescription string         `json:"location_description"`
	Instagram           string         `json:"instagram,omitempty"`
	Website             string         `json:"website,omitempty"`
	StoreName           string         `json:"store_name"`
	Address             string         `json:"address"`
	Hours               string         `json:"hours"`
	Coordinate          geo.Coordinate `json:"coordinate"`
	Open                bool           `json:"open"`
	HasFavouriteFlavour bool           `json:"has_favourite_flavour"`
}

// GetMarkersHandler handles marker queries.
type GetMarkersHandler struct {
	repo domain.CatalogRepository
}

// NewGetMarkersHandler creates a get markers handler.
func NewGetMarkersHandler(repo domain.CatalogRepository) *GetMarkersHandler {
	return &GetMarkersHandler{repo: repo}
}

// Handle executes the query.
func (h *GetMarkersHandler) Handle(q GetMarkersQuery) []Marker {
	favs := q.Favourites
	if favs == nil {
		favs = filter.NoFavourites
	}
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	var markers []Marker
	for _, location := range h.repo.Locations() {
		hasFavourite := false
		for _, f := range h.repo.FlavoursByLocation(location.ID) {
			if favs.IsFavourite(f.ID) {
				hasFavourite = true
				break
			}
		}

		for _, store := range location.Stores {
			markers = append(markers, Marker{
				LocationID:          location.ID,
				LocationName:        location.Name,
				LocationDescription: location.Description,
				Instagram:           location.Instagram,
				Website:             location.Website,
				StoreName:           store.Name,
				Address:             store.Address,
				Hours:               store.Hours,
				Coordinate:          store.Coordinate(),
				Open:                hours.IsOpen(store.Hours, now),
				HasFavouriteFlavour: hasFavourite,
			})
		}
	}
	return markers
}

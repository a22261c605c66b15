package query

import (
	"time"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/catalog/filter"
)

// ListFlavoursQuery lists flavours through the filter pipeline.
type ListFlavoursQuery struct {
	Criteria   filter.Criteria
	Favourites filter.FavouriteView
	Now        time.Time
}

// ListFlavoursHandler handles flavour list queries.
type ListFlavoursHandler struct {
	repo domain.CatalogRepository
}

// NewListFlavoursHandler creates a list flavours handler.
func NewListFlavoursHandler(repo domain.CatalogRepository) *ListFlavoursHandler {
	return &ListFlavoursHandler{repo: repo}
}

// Handle executes the query.
func (h *ListFlavoursHandler) Handle(q ListFlavoursQuery) []domain.Flavour {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}
	return filter.FilterFlavours(h.repo.Flavours(), h.repo.Locations(), q.Criteria, q.Favourites, now)
}

package query

import (
	"github.com/cocoatrail/festival-api/internal/catalog/domain"
)

// GetStatsQuery fetches catalog statistics.
type GetStatsQuery struct{}

// CatalogStats summarizes the loaded catalog.
type CatalogStats struct {
	Version       string         `json:"version"`
	FlavourCount  int            `json:"flavour_count"`
	LocationCount int            `json:"location_count"`
	StoreCount    int            `json:"store_count"`
	TagCounts     map[string]int `json:"tag_counts"`
}

// GetStatsHandler handles stats queries.
type GetStatsHandler struct {
	repo domain.CatalogRepository
}

// NewGetStatsHandler creates a get stats handler.
func NewGetStatsHandler(repo domain.CatalogRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the query.
func (h *GetStatsHandler) Handle(GetStatsQuery) CatalogStats {
	flavours := h.repo.Flavours()
	locations := h.repo.Locations()

	stats := CatalogStats{
		Version:       h.repo.Version(),
		FlavourCount:  len(flavours),
		LocationCount: len(locations),
		TagCounts:     make(map[string]int),
	}

	for _, l := range locations {
		stats.StoreCount += len(l.Stores)
	}
	for _, f := range flavours {
		for _, tag := range f.Tags {
			stats.TagCounts[tag]++
		}
	}

	return stats
}

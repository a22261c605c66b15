package query

import (
	"fmt"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
)

// GetLocationQuery fetches one location with its flavours.
type GetLocationQuery struct {
	ID int
}

// LocationDetail is a location plus the flavours served there.
type LocationDetail struct {
	domain.Location
	Flavours []domain.Flavour `json:"flavours"`
}

// GetLocationHandler handles location detail queries.
type GetLocationHandler struct {
	repo domain.CatalogRepository
}

// NewGetLocationHandler creates a get location handler.
func NewGetLocationHandler(repo domain.CatalogRepository) *GetLocationHandler {
	return &GetLocationHandler{repo: repo}
}

// Handle executes the query.
func (h *GetLocationHandler) Handle(q GetLocationQuery) (*LocationDetail, error) {
	location, err := h.repo.LocationByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return &LocationDetail{
		Location: *location,
		Flavours: h.repo.FlavoursByLocation(location.ID),
	}, nil
}

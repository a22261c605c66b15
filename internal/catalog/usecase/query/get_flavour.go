package query

import (
	"errors"
	"fmt"

	"github.com/cocoatrail/festival-api/internal/catalog/domain"
)

// GetFlavourQuery fetches one flavour with its location context.
type GetFlavourQuery struct {
	ID int
}

// FlavourDetail is a flavour plus its owning location. Location is nil when
// the catalog carries a dangling reference; callers render without vendor
// context in that case.
type FlavourDetail struct {
	domain.Flavour
	Location *domain.Location `json:"location_detail,omitempty"`
}

// GetFlavourHandler handles flavour detail queries.
type GetFlavourHandler struct {
	repo domain.CatalogRepository
}

// NewGetFlavourHandler creates a get flavour handler.
func NewGetFlavourHandler(repo domain.CatalogRepository) *GetFlavourHandler {
	return &GetFlavourHandler{repo: repo}
}

// Handle executes the query.
func (h *GetFlavourHandler) Handle(q GetFlavourQuery) (*FlavourDetail, error) {
	flavour, err := h.repo.FlavourByID(q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get flavour: %w", err)
	}

	detail := &FlavourDetail{Flavour: *flavour}

	location, err := h.repo.LocationByID(flavour.LocationID)
	if err == nil {
		detail.Location = location
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return detail, nil
}

package query

import (
	"context"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// GetStateQuery fetches one device's favourite and tasted sets.
type GetStateQuery struct {
	DeviceID string
}

// GetStateHandler handles state queries.
type GetStateHandler struct {
	repo domain.FavouritesRepository
}

// NewGetStateHandler creates a get state handler.
func NewGetStateHandler(repo domain.FavouritesRepository) *GetStateHandler {
	return &GetStateHandler{repo: repo}
}

// Handle returns the device state. An empty device ID or a load failure
// yields an empty state so list rendering is never blocked on favourites.
func (h *GetStateHandler) Handle(ctx context.Context, q GetStateQuery) *domain.State {
	if q.DeviceID == "" {
		return domain.EmptyState()
	}

	state, err := h.repo.Load(ctx, q.DeviceID)
	if err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("device_id", q.DeviceID).
			Msg("Failed to load favourites, using empty state")
		return domain.EmptyState()
	}
	return state
}

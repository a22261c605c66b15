package command

import (
	"context"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
)

// ToggleTastedCommand flips a flavour's membership in a device's tasted set.
type ToggleTastedCommand struct {
	DeviceID  string
	FlavourID int
}

// ToggleTastedHandler handles toggle tasted commands.
type ToggleTastedHandler struct {
	repo      domain.FavouritesRepository
	publisher TogglePublisher
}

// NewToggleTastedHandler creates a toggle tasted handler.
func NewToggleTastedHandler(repo domain.FavouritesRepository, publisher TogglePublisher) *ToggleTastedHandler {
	return &ToggleTastedHandler{repo: repo, publisher: publisher}
}

// Handle executes the toggle and returns the new membership.
func (h *ToggleTastedHandler) Handle(ctx context.Context, cmd ToggleTastedCommand) (bool, error) {
	return toggle(ctx, h.repo, h.publisher, domain.MarkerTasted, cmd.DeviceID, cmd.FlavourID)
}

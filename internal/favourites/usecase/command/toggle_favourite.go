package command

import (
	"context"
	"fmt"
	"time"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/kafka"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// TogglePublisher emits toggle events. A nil publisher disables publishing.
type TogglePublisher interface {
	PublishFavouriteToggled(ctx context.Context, event kafka.FavouriteToggledEvent) error
}

// ToggleFavouriteCommand flips a flavour's membership in a device's
// favourite set.
type ToggleFavouriteCommand struct {
	DeviceID  string
	FlavourID int
}

// ToggleFavouriteHandler handles toggle favourite commands.
type ToggleFavouriteHandler struct {
	repo      domain.FavouritesRepository
	publisher TogglePublisher
}

// NewToggleFavouriteHandler creates a toggle favourite handler.
func NewToggleFavouriteHandler(repo domain.FavouritesRepository, publisher TogglePublisher) *ToggleFavouriteHandler {
	return &ToggleFavouriteHandler{repo: repo, publisher: publisher}
}

// Handle executes the toggle and returns the new membership.
func (h *ToggleFavouriteHandler) Handle(ctx context.Context, cmd ToggleFavouriteCommand) (bool, error) {
	return toggle(ctx, h.repo, h.publisher, domain.MarkerFavourite, cmd.DeviceID, cmd.FlavourID)
}

// toggle is the shared implementation behind both markers. The state change
// is synchronous; persistence and event publishing are fire-and-forget.
func toggle(ctx context.Context, repo domain.FavouritesRepository, publisher TogglePublisher, marker domain.Marker, deviceID string, flavourID int) (bool, error) {
	if deviceID == "" {
		return false, fmt.Errorf("device_id is required")
	}
	if flavourID <= 0 {
		return false, fmt.Errorf("flavour_id must be positive")
	}

	state, err := repo.Load(ctx, deviceID)
	if err != nil {
		return false, fmt.Errorf("failed to load favourites: %w", err)
	}

	marked := state.Toggle(marker, flavourID)

	if err := repo.Save(ctx, deviceID, state); err != nil {
		return false, fmt.Errorf("failed to save favourites: %w", err)
	}

	if publisher != nil {
		event := kafka.FavouriteToggledEvent{
			DeviceID:  deviceID,
			FlavourID: flavourID,
			Marker:    string(marker),
			Marked:    marked,
			Timestamp: time.Now(),
		}
		go func() {
			publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := publisher.PublishFavouriteToggled(publishCtx, event); err != nil {
				logger.Logger.Warn().
					Err(err).
					Str("device_id", deviceID).
					Int("flavour_id", flavourID).
					Msg("Failed to publish toggle event")
			}
		}()
	}

	return marked, nil
}

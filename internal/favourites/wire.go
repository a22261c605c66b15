//go:build wireinject
// +build wireinject

package favourites

import (
	"github.com/google/wire"

	"github.com/cocoatrail/festival-api/internal/device"
	"github.com/cocoatrail/festival-api/internal/favourites/delivery/http"
	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/internal/favourites/usecase/command"
	"github.com/cocoatrail/festival-api/internal/favourites/usecase/query"
)

// Command Handlers Providers
func ProvideToggleFavouriteHandler(repo domain.FavouritesRepository, publisher command.TogglePublisher) *command.ToggleFavouriteHandler {
	return command.NewToggleFavouriteHandler(repo, publisher)
}

func ProvideToggleTastedHandler(repo domain.FavouritesRepository, publisher command.TogglePublisher) *command.ToggleTastedHandler {
	return command.NewToggleTastedHandler(repo, publisher)
}

// Query Handlers Providers
func ProvideGetStateHandler(repo domain.FavouritesRepository) *query.GetStateHandler {
	return query.NewGetStateHandler(repo)
}

// HandlerSet provides all favourites handlers.
var HandlerSet = wire.NewSet(
	ProvideToggleFavouriteHandler,
	ProvideToggleTastedHandler,
	ProvideGetStateHandler,
)

// InitializeFavouritesHandler builds the favourites HTTP handler graph.
func InitializeFavouritesHandler(
	repo domain.FavouritesRepository,
	publisher command.TogglePublisher,
	tokens *device.TokenManager,
) (*http.FavouritesHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewFavouritesHandler,
	)
	return nil, nil
}

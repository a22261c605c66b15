//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/cocoatrail/festival-api/internal/catalog/delivery/http"
	"github.com/cocoatrail/festival-api/internal/catalog/domain"
	"github.com/cocoatrail/festival-api/internal/catalog/usecase/query"
	favquery "github.com/cocoatrail/festival-api/internal/favourites/usecase/query"
	"github.com/cocoatrail/festival-api/internal/geo"
)

// Query Handlers Providers
func ProvideListFlavoursHandler(repo domain.CatalogRepository) *query.ListFlavoursHandler {
	return query.NewListFlavoursHandler(repo)
}

func ProvideListLocationsHandler(repo domain.CatalogRepository) *query.ListLocationsHandler {
	return query.NewListLocationsHandler(repo)
}

func ProvideGetFlavourHandler(repo domain.CatalogRepository) *query.GetFlavourHandler {
	return query.NewGetFlavourHandler(repo)
}

func ProvideGetLocationHandler(repo domain.CatalogRepository) *query.GetLocationHandler {
	return query.NewGetLocationHandler(repo)
}

func ProvideGetStatsHandler(repo domain.CatalogRepository) *query.GetStatsHandler {
	return query.NewGetStatsHandler(repo)
}

func ProvideGetMarkersHandler(repo domain.CatalogRepository) *query.GetMarkersHandler {
	return query.NewGetMarkersHandler(repo)
}

// QueryHandlerSet provides all catalog query handlers.
var QueryHandlerSet = wire.NewSet(
	ProvideListFlavoursHandler,
	ProvideListLocationsHandler,
	ProvideGetFlavourHandler,
	ProvideGetLocationHandler,
	ProvideGetStatsHandler,
	ProvideGetMarkersHandler,
)

// InitializeCatalogHandler builds the catalog HTTP handler graph.
func InitializeCatalogHandler(
	repo domain.CatalogRepository,
	favouriteState *favquery.GetStateHandler,
	defaultOrigin geo.Coordinate,
) (*http.CatalogHandler, error) {
	wire.Build(
		QueryHandlerSet,
		http.NewCatalogHandlerWithDI,
	)
	return nil, nil
}

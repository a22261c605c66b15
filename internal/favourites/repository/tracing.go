package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
)

var tracer = otel.Tracer("favourites-repository")

// TracingFavouritesRepository wraps a repository with OpenTelemetry spans.
type TracingFavouritesRepository struct {
	inner domain.FavouritesRepository
}

// NewTracingFavouritesRepository decorates inner with tracing.
func NewTracingFavouritesRepository(inner domain.FavouritesRepository) *TracingFavouritesRepository {
	return &TracingFavouritesRepository{inner: inner}
}

func (r *TracingFavouritesRepository) Load(ctx context.Context, deviceID string) (*domain.State, error) {
	ctx, span := tracer.Start(ctx, "repository.Load",
		trace.WithAttributes(attribute.String("device.id", deviceID)),
	)
	defer span.End()

	state, err := r.inner.Load(ctx, deviceID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("favourites.count", len(state.FavouriteIDs())),
		attribute.Int("tasted.count", len(state.TastedIDs())),
	)
	return state, nil
}

func (r *TracingFavouritesRepository) Save(ctx context.Context, deviceID string, state *domain.State) error {
	ctx, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.String("device.id", deviceID),
			attribute.Int("favourites.count", len(state.FavouriteIDs())),
			attribute.Int("tasted.count", len(state.TastedIDs())),
		),
	)
	defer span.End()

	if err := r.inner.Save(ctx, deviceID, state); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

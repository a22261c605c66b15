package repository

import (
	"context"
	"sync"
	"time"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

const persistTimeout = 5 * time.Second

// CachedFavouritesRepository is a write-through layer over a durable backend.
// Loads hit memory after the first read of a device; saves update memory
// synchronously and flush to the backend in the background, so a toggle is
// visible to the next request immediately and a persistence failure never
// surfaces to the caller.
type CachedFavouritesRepository struct {
	backend domain.FavouritesRepository

	mu     sync.Mutex
	states map[string]*domain.State
}

// NewCachedFavouritesRepository wraps backend with the write-through cache.
func NewCachedFavouritesRepository(backend domain.FavouritesRepository) *CachedFavouritesRepository {
	return &CachedFavouritesRepository{
		backend: backend,
		states:  make(map[string]*domain.State),
	}
}

func (r *CachedFavouritesRepository) Load(ctx context.Context, deviceID string) (*domain.State, error) {
	r.mu.Lock()
	if state, ok := r.states[deviceID]; ok {
		defer r.mu.Unlock()
		return state.Clone(), nil
	}
	r.mu.Unlock()

	state, err := r.backend.Load(ctx, deviceID)
	if err != nil {
		// Fail-soft: an unreachable backend yields an empty, non-cached state
		// so a later retry can still find persisted data.
		logger.Warn(ctx).
			Err(err).
			Str("device_id", deviceID).
			Msg("Failed to load favourites, starting empty")
		return domain.EmptyState(), nil
	}

	r.mu.Lock()
	r.states[deviceID] = state.Clone()
	r.mu.Unlock()

	return state, nil
}

// Save stores the state in memory and persists it asynchronously,
// fire-and-forget. Failures are logged and dropped; last writer wins.
func (r *CachedFavouritesRepository) Save(ctx context.Context, deviceID string, state *domain.State) error {
	snapshot := state.Clone()

	r.mu.Lock()
	r.states[deviceID] = snapshot
	r.mu.Unlock()

	go func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()

		if err := r.backend.Save(flushCtx, deviceID, snapshot); err != nil {
			logger.Logger.Error().
				Err(err).
				Str("device_id", deviceID).
				Msg("Failed to persist favourites")
		}
	}()

	return nil
}

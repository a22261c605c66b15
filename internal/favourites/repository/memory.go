package repository

import (
	"context"
	"sync"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
)

// MemoryFavouritesRepository keeps state in a process-local map. Used by
// tests and as the fallback when redis is unavailable.
type MemoryFavouritesRepository struct {
	mu     sync.RWMutex
	states map[string]*domain.State
}

// NewMemoryFavouritesRepository creates an empty in-memory repository.
func NewMemoryFavouritesRepository() *MemoryFavouritesRepository {
	return &MemoryFavouritesRepository{states: make(map[string]*domain.State)}
}

func (r *MemoryFavouritesRepository) Load(_ context.Context, deviceID string) (*domain.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[deviceID]
	if !ok {
		return domain.EmptyState(), nil
	}
	return state.Clone(), nil
}

func (r *MemoryFavouritesRepository) Save(_ context.Context, deviceID string, state *domain.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[deviceID] = state.Clone()
	return nil
}

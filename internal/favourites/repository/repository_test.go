package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
)

func TestMemoryRepository(t *testing.T) {
	repo := NewMemoryFavouritesRepository()
	ctx := context.Background()

	state, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.FavouriteIDs()) != 0 || len(state.TastedIDs()) != 0 {
		t.Error("unknown device should load empty")
	}

	state.Toggle(domain.MarkerFavourite, 5)
	if err := repo.Save(ctx, "device-1", state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Mutating the saved state must not reach the repository.
	state.Toggle(domain.MarkerFavourite, 6)

	loaded, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.IsFavourite(5) {
		t.Error("saved favourite lost")
	}
	if loaded.IsFavourite(6) {
		t.Error("post-save mutation leaked into the repository")
	}
}

type failingRepository struct{}

func (failingRepository) Load(context.Context, string) (*domain.State, error) {
	return nil, errors.New("backend down")
}

func (failingRepository) Save(context.Context, string, *domain.State) error {
	return errors.New("backend down")
}

func TestCachedRepositoryLoadFailSoft(t *testing.T) {
	repo := NewCachedFavouritesRepository(failingRepository{})

	state, err := repo.Load(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v, want fail-soft nil", err)
	}
	if len(state.FavouriteIDs()) != 0 {
		t.Error("fail-soft load should be empty")
	}
}

func TestCachedRepositorySaveSurvivesBackendFailure(t *testing.T) {
	repo := NewCachedFavouritesRepository(failingRepository{})
	ctx := context.Background()

	state := domain.EmptyState()
	state.Toggle(domain.MarkerFavourite, 9)

	if err := repo.Save(ctx, "device-1", state); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	// The toggle must be visible immediately even though persistence fails.
	loaded, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loaded.IsFavourite(9) {
		t.Error("saved state not visible from memory")
	}
}

func TestCachedRepositoryFlushesToBackend(t *testing.T) {
	backend := NewMemoryFavouritesRepository()
	repo := NewCachedFavouritesRepository(backend)
	ctx := context.Background()

	state := domain.EmptyState()
	state.Toggle(domain.MarkerTasted, 3)

	if err := repo.Save(ctx, "device-1", state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Persistence is asynchronous; poll the backend briefly.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		persisted, err := backend.Load(ctx, "device-1")
		if err != nil {
			t.Fatalf("backend Load() error = %v", err)
		}
		if persisted.IsTasted(3) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("state never flushed to the backend")
}

func TestCachedRepositoryServesFromMemoryAfterFirstLoad(t *testing.T) {
	backend := NewMemoryFavouritesRepository()
	ctx := context.Background()

	seed := domain.NewState([]int{1}, nil)
	if err := backend.Save(ctx, "device-1", seed); err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}

	repo := NewCachedFavouritesRepository(backend)

	first, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !first.IsFavourite(1) {
		t.Fatal("seeded favourite missing")
	}

	// A direct backend change is invisible once the device is cached.
	if err := backend.Save(ctx, "device-1", domain.EmptyState()); err != nil {
		t.Fatalf("backend Save() error = %v", err)
	}

	second, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !second.IsFavourite(1) {
		t.Error("cached load should not see backend changes")
	}
}

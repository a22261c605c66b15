package command

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cocoatrail/festival-api/internal/favourites/repository"
	"github.com/cocoatrail/festival-api/kafka"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []kafka.FavouriteToggledEvent
}

func (p *capturePublisher) PublishFavouriteToggled(_ context.Context, event kafka.FavouriteToggledEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturePublisher) wait(t *testing.T, n int) []kafka.FavouriteToggledEvent {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		p.mu.Lock()
		if len(p.events) >= n {
			events := append([]kafka.FavouriteToggledEvent(nil), p.events...)
			p.mu.Unlock()
			return events
		}
		p.mu.Unlock()
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d published events", n)
	return nil
}

func TestToggleFavourite(t *testing.T) {
	repo := repository.NewMemoryFavouritesRepository()
	publisher := &capturePublisher{}
	handler := NewToggleFavouriteHandler(repo, publisher)
	ctx := context.Background()

	marked, err := handler.Handle(ctx, ToggleFavouriteCommand{DeviceID: "device-1", FlavourID: 5})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !marked {
		t.Error("first toggle should mark")
	}

	state, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !state.IsFavourite(5) {
		t.Error("toggle not persisted")
	}

	events := publisher.wait(t, 1)
	if events[0].DeviceID != "device-1" || events[0].FlavourID != 5 {
		t.Errorf("unexpected event %+v", events[0])
	}
	if events[0].Marker != "favourite" || !events[0].Marked {
		t.Errorf("unexpected event marker %+v", events[0])
	}
}

func TestToggleFavouriteTwiceRestores(t *testing.T) {
	repo := repository.NewMemoryFavouritesRepository()
	handler := NewToggleFavouriteHandler(repo, nil)
	ctx := context.Background()
	cmd := ToggleFavouriteCommand{DeviceID: "device-1", FlavourID: 5}

	if _, err := handler.Handle(ctx, cmd); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	marked, err := handler.Handle(ctx, cmd)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if marked {
		t.Error("second toggle should unmark")
	}

	state, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if state.IsFavourite(5) {
		t.Error("double toggle should restore the original state")
	}
}

func TestToggleTasted(t *testing.T) {
	repo := repository.NewMemoryFavouritesRepository()
	handler := NewToggleTastedHandler(repo, nil)
	ctx := context.Background()

	marked, err := handler.Handle(ctx, ToggleTastedCommand{DeviceID: "device-1", FlavourID: 2})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !marked {
		t.Error("first toggle should mark")
	}

	state, err := repo.Load(ctx, "device-1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !state.IsTasted(2) {
		t.Error("tasted toggle not persisted")
	}
	if state.IsFavourite(2) {
		t.Error("tasted toggle leaked into favourites")
	}
}

func TestToggleValidation(t *testing.T) {
	handler := NewToggleFavouriteHandler(repository.NewMemoryFavouritesRepository(), nil)
	ctx := context.Background()

	if _, err := handler.Handle(ctx, ToggleFavouriteCommand{FlavourID: 1}); err == nil {
		t.Error("missing device ID accepted")
	}
	if _, err := handler.Handle(ctx, ToggleFavouriteCommand{DeviceID: "device-1", FlavourID: 0}); err == nil {
		t.Error("non-positive flavour ID accepted")
	}
}

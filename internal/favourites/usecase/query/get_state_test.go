package query

import (
	"context"
	"errors"
	"testing"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/internal/favourites/repository"
)

type failingRepository struct{}

func (failingRepository) Load(context.Context, string) (*domain.State, error) {
	return nil, errors.New("backend down")
}

func (failingRepository) Save(context.Context, string, *domain.State) error {
	return errors.New("backend down")
}

func TestGetState(t *testing.T) {
	repo := repository.NewMemoryFavouritesRepository()
	ctx := context.Background()

	seed := domain.NewState([]int{3, 1}, []int{2})
	if err := repo.Save(ctx, "device-1", seed); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	handler := NewGetStateHandler(repo)
	state := handler.Handle(ctx, GetStateQuery{DeviceID: "device-1"})

	if !state.IsFavourite(1) || !state.IsFavourite(3) || !state.IsTasted(2) {
		t.Errorf("state = favourites %v tasted %v", state.FavouriteIDs(), state.TastedIDs())
	}
}

func TestGetStateEmptyDeviceID(t *testing.T) {
	handler := NewGetStateHandler(repository.NewMemoryFavouritesRepository())

	state := handler.Handle(context.Background(), GetStateQuery{})
	if len(state.FavouriteIDs()) != 0 || len(state.TastedIDs()) != 0 {
		t.Error("empty device ID should yield an empty state")
	}
}

func TestGetStateFailSoft(t *testing.T) {
	handler := NewGetStateHandler(failingRepository{})

	state := handler.Handle(context.Background(), GetStateQuery{DeviceID: "device-1"})
	if state == nil || len(state.FavouriteIDs()) != 0 {
		t.Error("load failure should yield an empty state")
	}
}

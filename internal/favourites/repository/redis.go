package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cocoatrail/festival-api/internal/favourites/domain"
	"github.com/cocoatrail/festival-api/pkg/logger"
)

// RedisFavouritesRepository stores each device's sets under two keys, each
// holding a JSON-encoded array of flavour IDs. Last writer wins; there is no
// cross-device merge.
type RedisFavouritesRepository struct {
	client *redis.Client
}

// NewRedisFavouritesRepository creates a redis-backed repository.
func NewRedisFavouritesRepository(client *redis.Client) *RedisFavouritesRepository {
	return &RedisFavouritesRepository{client: client}
}

func favouritesKey(deviceID string) string { return "favourites:" + deviceID }
func tastedKey(deviceID string) string     { return "tasted:" + deviceID }

// Load reads both keys. A missing key or a value that fails to decode yields
// an empty set rather than an error.
func (r *RedisFavouritesRepository) Load(ctx context.Context, deviceID string) (*domain.State, error) {
	favourites, err := r.readSet(ctx, favouritesKey(deviceID))
	if err != nil {
		return nil, err
	}
	tasted, err := r.readSet(ctx, tastedKey(deviceID))
	if err != nil {
		return nil, err
	}
	return domain.NewState(favourites, tasted), nil
}

// Save writes both sets back under their keys.
func (r *RedisFavouritesRepository) Save(ctx context.Context, deviceID string, state *domain.State) error {
	if err := r.writeSet(ctx, favouritesKey(deviceID), state.FavouriteIDs()); err != nil {
		return err
	}
	return r.writeSet(ctx, tastedKey(deviceID), state.TastedIDs())
}

func (r *RedisFavouritesRepository) readSet(ctx context.Context, key string) ([]int, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("key", key).
			Msg("Discarding unreadable favourite data")
		return nil, nil
	}
	return ids, nil
}

func (r *RedisFavouritesRepository) writeSet(ctx context.Context, key string, ids []int) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

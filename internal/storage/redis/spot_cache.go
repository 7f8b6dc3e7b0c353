package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vietts/insicuri/internal/domain"
)

// SpotCache holds the non-removed spots as one JSON blob. The cache
// refresher keeps it warm; the resolver only reads it when the primary
// nearby query fails.
type SpotCache struct {
	client *goredis.Client
	key    string
}

func NewSpotCache(r *Redis) *SpotCache {
	return &SpotCache{
		client: r.Client,
		key:    "spots:active",
	}
}

func (c *SpotCache) GetActive(ctx context.Context) ([]domain.CachedSpot, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var spots []domain.CachedSpot
	if err := json.Unmarshal(data, &spots); err != nil {
		return nil, err
	}

	return spots, nil
}

func (c *SpotCache) SetActive(ctx context.Context, spots []domain.CachedSpot, ttl time.Duration) error {
	b, err := json.Marshal(spots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

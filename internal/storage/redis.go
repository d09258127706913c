package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// GenerationCache stores idempotency markers for completed auto-generation
// triggers, keyed by event and confirmed-attendee count at trigger time.
type GenerationCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewGenerationCache(client *redis.Client, ttl time.Duration) *GenerationCache {
	return &GenerationCache{Client: client, TTL: ttl}
}

func (c *GenerationCache) GenerationMarkerKey(eventID string, confirmedCount int) string {
	return "recs:" + eventID + ":" + strconv.Itoa(confirmedCount)
}

func (c *GenerationCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *GenerationCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

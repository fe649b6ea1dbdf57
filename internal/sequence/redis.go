package sequence

import (
	"context"

	"github.com/redis/go-redis/v9"
)

type redisSequencer struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisSequencer returns a sequencer backed by Redis INCR, giving ticket
// numbers that stay unique across processes and restarts.
func NewRedisSequencer(client *redis.Client, keyPrefix string) Sequencer {
	return &redisSequencer{client: client, keyPrefix: keyPrefix}
}

func (s *redisSequencer) Next(ctx context.Context, scope string) (int64, error) {
	return s.client.Incr(ctx, s.keyPrefix+":"+scope).Result()
}

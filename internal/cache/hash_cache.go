package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const hashKeyPrefix = "creative:hash:"

// HashCache is a redis layer in front of the store's content-hash lookup.
// It only ever short-circuits positive answers; a miss or a redis error
// falls through to the store, which stays the correctness source of truth.
type HashCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewHashCache(addr string, ttl time.Duration, logger *slog.Logger) (*HashCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &HashCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Seen reports whether the hash was recently marked as persisted.
func (c *HashCache) Seen(ctx context.Context, hash string) bool {
	count, err := c.client.Exists(ctx, hashKeyPrefix+hash).Result()
	if err != nil {
		c.logger.Warn("hash cache lookup failed", "error", err)
		return false
	}
	return count > 0
}

// MarkSeen records the hash after a successful persist.
func (c *HashCache) MarkSeen(ctx context.Context, hash string) {
	if err := c.client.Set(ctx, hashKeyPrefix+hash, "1", c.ttl).Err(); err != nil {
		c.logger.Warn("hash cache write failed", "error", err)
	}
}

func (c *HashCache) Close() error {
	return c.client.Close()
}

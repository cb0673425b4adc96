package translate

import (
	"context"
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
)

// RedisCache caches translations in Redis with a fixed TTL. Cache failures
// degrade to a miss; they never fail the translation itself.
type RedisCache struct {
	client *goredis.Client
}

func NewRedisCache(client *goredis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			slog.Warn("Translation cache read failed", "error", err)
		}
		return "", false
	}
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, key, value, cacheTTL).Err(); err != nil {
		slog.Warn("Translation cache write failed", "error", err)
	}
}

// NewRedisClient connects to Redis at redisURL and verifies the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

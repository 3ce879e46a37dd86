package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/pkg/logger"
)

// Cache is a JSON cache-aside store. Misses and backend errors are both
// reported as a miss so callers always fall back to the database.
type Cache interface {
	Get(ctx context.Context, key string, dst any) bool
	Set(ctx context.Context, key string, v any)
	Delete(ctx context.Context, keys ...string)
}

type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis builds a Cache over client. Keys are namespaced with prefix.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) Get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		logger.Warn("cache payload corrupt", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, c.key(key)).Err()
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(key), payload, c.ttl).Err(); err != nil {
		logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		logger.Warn("cache delete failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

type nopCache struct{}

// Nop returns a Cache that never stores anything; used when redis is not configured.
func Nop() Cache { return nopCache{} }

func (nopCache) Get(context.Context, string, any) bool { return false }
func (nopCache) Set(context.Context, string, any)      {}
func (nopCache) Delete(context.Context, ...string)     {}

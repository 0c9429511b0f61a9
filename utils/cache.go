package utils

import (
	"FileHaven/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get reads a cached value.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Set writes a cached value.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, string(data), expiration).Err()
}

// Delete removes a cache entry.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// cache returns the active cache, or nil when Redis is disabled.
func cache() Cache {
	if repo.Redis == nil {
		return nil
	}
	return NewRedisCache(repo.Redis)
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const CacheKeyPublicLink = "public:link"

// GetPublicLinkArtifactID reads a cached token to artifact mapping.
func GetPublicLinkArtifactID(ctx context.Context, token string) (uint64, bool) {
	c := cache()
	if c == nil {
		return 0, false
	}
	var id uint64
	if err := c.Get(ctx, BuildCacheKey(CacheKeyPublicLink, token), &id); err != nil {
		return 0, false
	}
	if id == 0 {
		return 0, false
	}
	return id, true
}

// SetPublicLinkArtifactID caches a token to artifact mapping.
func SetPublicLinkArtifactID(ctx context.Context, token string, artifactID uint64, expiration time.Duration) error {
	c := cache()
	if c == nil {
		return nil
	}
	return c.Set(ctx, BuildCacheKey(CacheKeyPublicLink, token), artifactID, expiration)
}

// InvalidatePublicLinkCache removes a cached token mapping.
func InvalidatePublicLinkCache(ctx context.Context, token string) error {
	c := cache()
	if c == nil {
		return nil
	}
	return c.Delete(ctx, BuildCacheKey(CacheKeyPublicLink, token))
}

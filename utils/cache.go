package utils

import (
	"FileTransfer/internal/repo"
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis cache client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
	}
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

// Exists checks whether a cache key exists.
func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

type CacheManager struct {
	cache Cache
}

var globalCacheManager *CacheManager
var cacheManagerOnce sync.Once

// InitCacheManager initializes the cache manager.
func InitCacheManager() {
	cacheManagerOnce.Do(func() {
		globalCacheManager = &CacheManager{
			cache: NewRedisCache(repo.Redis),
		}
	})
}

// GetCacheManager returns the cache manager.
func GetCacheManager() *CacheManager {
	if globalCacheManager == nil {
		InitCacheManager()
	}
	return globalCacheManager
}

// BuildCacheKey builds a cache key.
func BuildCacheKey(prefix string, params ...interface{}) string {
	key := prefix
	for _, param := range params {
		key += fmt.Sprintf(":%v", param)
	}
	return key
}

const CacheKeyLinkToken = "link:token"

// GetLinkFileFromCache reads the cached file ID behind a link token.
func GetLinkFileFromCache(ctx context.Context, token string) (uint64, bool) {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyLinkToken, token)

	var fileID uint64
	if err := manager.cache.Get(ctx, key, &fileID); err != nil {
		return 0, false
	}
	if fileID == 0 {
		return 0, false
	}
	return fileID, true
}

// SetLinkFileToCache caches the file ID behind a link token.
func SetLinkFileToCache(ctx context.Context, token string, fileID uint64, expiration time.Duration) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyLinkToken, token)
	return manager.cache.Set(ctx, key, fileID, expiration)
}

// InvalidateLinkCache drops the cache entry for a link token.
func InvalidateLinkCache(ctx context.Context, token string) error {
	manager := GetCacheManager()
	key := BuildCacheKey(CacheKeyLinkToken, token)
	return manager.cache.Delete(ctx, key)
}

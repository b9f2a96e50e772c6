// internal/service/result_cache.go
// Two-layer cache (memory + redis) for the latest ScoreResult per item,
// so repeat lookups skip both the engine and Postgres.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
	"github.com/xeeshan-dev/amazon-product-hunter-pro/pkg/redisclient"
)

type ResultCache struct {
	redis    *redisclient.Client
	logger   *zap.Logger
	memCache *resultMemCache
	ttl      time.Duration
}

type resultMemCache struct {
	mu     sync.RWMutex
	data   map[string]*resultEntry
	maxAge time.Duration
}

type resultEntry struct {
	result   *models.ScoreResult
	cachedAt time.Time
}

// NewResultCache creates the cache. redis may be nil; the cache then runs
// memory-only, which is what tests and single-node deployments use.
func NewResultCache(redis *redisclient.Client, ttl time.Duration, logger *zap.Logger) *ResultCache {
	c := &ResultCache{
		redis:  redis,
		logger: logger,
		ttl:    ttl,
		memCache: &resultMemCache{
			data:   make(map[string]*resultEntry),
			maxAge: ttl,
		},
	}
	go c.memCache.cleanup()
	return c
}

// Get checks memory first, then redis.
func (c *ResultCache) Get(ctx context.Context, itemID string) (*models.ScoreResult, error) {
	key := c.cacheKey(itemID)

	if result := c.memCache.get(key); result != nil {
		return result, nil
	}

	if c.redis != nil {
		data, err := c.redis.Get(ctx, key)
		if err == nil {
			var result models.ScoreResult
			if err := json.Unmarshal([]byte(data), &result); err == nil {
				c.memCache.set(key, &result)
				return &result, nil
			}
		}
	}

	return nil, fmt.Errorf("cache miss")
}

// Set stores the result in both layers. Redis failures are logged and
// swallowed; the cache is an optimization, never a dependency.
func (c *ResultCache) Set(ctx context.Context, result *models.ScoreResult) {
	key := c.cacheKey(result.ItemID)
	c.memCache.set(key, result)

	if c.redis == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Error("failed to marshal score result", zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Error("failed to cache score result in redis",
			zap.Error(err),
			zap.String("key", key))
	}
}

// Invalidate drops the cached result for one item.
func (c *ResultCache) Invalidate(ctx context.Context, itemID string) {
	key := c.cacheKey(itemID)
	c.memCache.delete(key)
	if c.redis != nil {
		if err := c.redis.Delete(ctx, key); err != nil {
			c.logger.Error("failed to invalidate cached result", zap.Error(err))
		}
	}
}

// Stats returns cache statistics for the stats endpoint.
func (c *ResultCache) Stats() map[string]interface{} {
	c.memCache.mu.RLock()
	defer c.memCache.mu.RUnlock()

	return map[string]interface{}{
		"memory_cache_size": len(c.memCache.data),
		"ttl":               c.ttl.String(),
	}
}

func (c *ResultCache) cacheKey(itemID string) string {
	return fmt.Sprintf("score:%s", itemID)
}

func (mc *resultMemCache) get(key string) *models.ScoreResult {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	entry, exists := mc.data[key]
	if !exists {
		return nil
	}
	if time.Since(entry.cachedAt) > mc.maxAge {
		return nil
	}
	return entry.result
}

func (mc *resultMemCache) set(key string, result *models.ScoreResult) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.data[key] = &resultEntry{result: result, cachedAt: time.Now()}
}

func (mc *resultMemCache) delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	delete(mc.data, key)
}

func (mc *resultMemCache) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		mc.mu.Lock()
		now := time.Now()
		for key, entry := range mc.data {
			if now.Sub(entry.cachedAt) > mc.maxAge {
				delete(mc.data, key)
			}
		}
		mc.mu.Unlock()
	}
}

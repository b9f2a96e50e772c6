// internal/service/result_cache_test.go
package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/xeeshan-dev/amazon-product-hunter-pro/internal/models"
)

func TestResultCacheMemoryOnly(t *testing.T) {
	cache := NewResultCache(nil, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	result := &models.ScoreResult{ItemID: "B0CACHE001", TotalScore: 72}
	cache.Set(ctx, result)

	got, err := cache.Get(ctx, "B0CACHE001")
	if err != nil {
		t.Fatalf("Get() error = %v after Set", err)
	}
	if got.TotalScore != 72 {
		t.Errorf("TotalScore = %d, want 72", got.TotalScore)
	}

	if _, err := cache.Get(ctx, "B0UNKNOWN1"); err == nil {
		t.Error("Get() = nil error for item never cached")
	}
}

func TestResultCacheInvalidate(t *testing.T) {
	cache := NewResultCache(nil, 5*time.Minute, zap.NewNop())
	ctx := context.Background()

	cache.Set(ctx, &models.ScoreResult{ItemID: "B0CACHE002", TotalScore: 55})
	cache.Invalidate(ctx, "B0CACHE002")

	if _, err := cache.Get(ctx, "B0CACHE002"); err == nil {
		t.Error("Get() = nil error after Invalidate")
	}
}

func TestResultCacheExpiry(t *testing.T) {
	cache := NewResultCache(nil, 10*time.Millisecond, zap.NewNop())
	ctx := context.Background()

	cache.Set(ctx, &models.ScoreResult{ItemID: "B0CACHE003", TotalScore: 61})
	time.Sleep(25 * time.Millisecond)

	if _, err := cache.Get(ctx, "B0CACHE003"); err == nil {
		t.Error("Get() = nil error for expired entry")
	}
}

func TestResultCacheStats(t *testing.T) {
	cache := NewResultCache(nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	cache.Set(ctx, &models.ScoreResult{ItemID: "B0CACHE004"})
	cache.Set(ctx, &models.ScoreResult{ItemID: "B0CACHE005"})

	stats := cache.Stats()
	if stats["memory_cache_size"] != 2 {
		t.Errorf("memory_cache_size = %v, want 2", stats["memory_cache_size"])
	}
}

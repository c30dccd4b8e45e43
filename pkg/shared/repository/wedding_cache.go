package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/logger"
	shareddomain "github.com/golangid/wedding-collab/pkg/shared/domain"
	"github.com/golangid/wedding-collab/tracer"
)

// weddingRepoCache read-through cache in front of wedding registry, ownership never changes so entries are only expired by ttl
type weddingRepoCache struct {
	next  WeddingRepository
	cache interfaces.Cache
	ttl   time.Duration
}

// NewWeddingRepoCache wrap wedding registry with cache
func NewWeddingRepoCache(next WeddingRepository, cache interfaces.Cache, ttl time.Duration) WeddingRepository {
	return &weddingRepoCache{next: next, cache: cache, ttl: ttl}
}

func weddingCacheKey(id string) string {
	return fmt.Sprintf("wedding-collab:wedding:%s", id)
}

func (r *weddingRepoCache) FindByID(ctx context.Context, id string) (data *shareddomain.Wedding, err error) {
	trace, ctx := tracer.StartTraceWithContext(ctx, "WeddingRepoCache:FindByID")
	defer func() { trace.SetError(err); trace.Finish() }()

	key := weddingCacheKey(id)
	if cached, cacheErr := r.cache.Get(ctx, key); cacheErr == nil {
		data = new(shareddomain.Wedding)
		if json.Unmarshal(cached, data) == nil {
			trace.SetTag("cache", "hit")
			return data, nil
		}
	}

	trace.SetTag("cache", "miss")
	data, err = r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(data)
	if err := r.cache.Set(ctx, key, payload, r.ttl); err != nil {
		logger.LogWithField(zapcore.WarnLevel, map[string]interface{}{
			"message": err.Error(), "context": "WeddingRepoCache", "scope": "set_cache", "weddingId": id,
		})
	}
	return data, nil
}

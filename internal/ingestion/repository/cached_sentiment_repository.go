package repository

import (
	"context"
	"time"

	"golang-stock-pulse/internal/ingestion/dto"

	"github.com/patrickmn/go-cache"
)

// cachedSentimentRepository decorates a SentimentRepository with an in-memory
// cache. The same headline often appears under several tickers within one
// run; the cache makes it a single provider call.
type cachedSentimentRepository struct {
	inner         SentimentRepository
	inmemoryCache *cache.Cache
}

// NewCachedSentimentRepository wraps inner with TTL-based memoization.
func NewCachedSentimentRepository(inner SentimentRepository, ttl time.Duration) SentimentRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &cachedSentimentRepository{
		inner:         inner,
		inmemoryCache: cache.New(ttl, 2*ttl),
	}
}

// Classify returns the cached result when present. Errors are never cached.
func (r *cachedSentimentRepository) Classify(ctx context.Context, headline string) (*dto.SentimentResult, error) {
	if cached, ok := r.inmemoryCache.Get(headline); ok {
		if result, ok := cached.(*dto.SentimentResult); ok {
			return result, nil
		}
	}

	result, err := r.inner.Classify(ctx, headline)
	if err != nil {
		return nil, err
	}

	r.inmemoryCache.Set(headline, result, cache.DefaultExpiration)
	return result, nil
}

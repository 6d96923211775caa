package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/pkg/common"
	"golang-stock-pulse/pkg/redis"
)

// cachingCandleRepository decorates a CandleRepository with Redis caching.
type cachingCandleRepository struct {
	inner CandleRepository
	rdb   *redis.Client
	ttl   time.Duration
}

// NewCachingCandleRepository decorates a CandleRepository with Redis caching.
// If ttl is 0 it defaults to 5 minutes. A nil client disables caching.
func NewCachingCandleRepository(rdb *redis.Client, ttl time.Duration, inner CandleRepository) CandleRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &cachingCandleRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

// Find retrieves candles, checking the cache first then falling back to the
// store. Cache writes are best effort.
func (c *cachingCandleRepository) Find(ctx context.Context, param dto.GetCandlesParam) ([]dto.CandleRow, error) {
	if c.rdb == nil {
		return c.inner.Find(ctx, param)
	}

	key := candleCacheKey(param)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []dto.CandleRow
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Corrupted entry.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Find(ctx, param)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// candleCacheKey generates a cache key covering every filter of the query.
func candleCacheKey(param dto.GetCandlesParam) string {
	start, end := "-", "-"
	if param.Start != nil {
		start = param.Start.UTC().Format("20060102150405")
	}
	if param.End != nil {
		end = param.End.UTC().Format("20060102150405")
	}
	return fmt.Sprintf("%s:%s:%s:%s:%d",
		common.RedisNamespaceCandles,
		safe(strings.ToLower(param.Ticker)),
		start,
		end,
		param.Limit,
	)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}

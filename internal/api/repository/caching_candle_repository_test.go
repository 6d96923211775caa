package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-stock-pulse/internal/api/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingCandleRepository is a CandleRepository fake that counts store reads.
type countingCandleRepository struct {
	calls int
	rows  []dto.CandleRow
	err   error
}

func (c *countingCandleRepository) Find(ctx context.Context, param dto.GetCandlesParam) ([]dto.CandleRow, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.rows, nil
}

func TestCachingCandleRepo_Find_NilClientBypassesCache(t *testing.T) {
	t.Parallel()

	inner := &countingCandleRepository{rows: []dto.CandleRow{{ID: 1, Ticker: "AAPL"}}}
	repo := NewCachingCandleRepository(nil, time.Minute, inner)

	first, err := repo.Find(context.Background(), dto.GetCandlesParam{Ticker: "AAPL"})
	require.NoError(t, err)
	second, err := repo.Find(context.Background(), dto.GetCandlesParam{Ticker: "AAPL"})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls, "without a client every read hits the store")
	assert.Equal(t, inner.rows, first)
	assert.Equal(t, inner.rows, second)
}

func TestCachingCandleRepo_Find_InnerErrorPassesThrough(t *testing.T) {
	t.Parallel()

	inner := &countingCandleRepository{err: errors.New("store down")}
	repo := NewCachingCandleRepository(nil, time.Minute, inner)

	_, err := repo.Find(context.Background(), dto.GetCandlesParam{})

	assert.ErrorContains(t, err, "store down")
}

func TestCandleCacheKey(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		param dto.GetCandlesParam
		want  string
	}{
		{
			name:  "empty filters",
			param: dto.GetCandlesParam{},
			want:  "pulse:candles:-:-:-:0",
		},
		{
			name:  "ticker is lowercased",
			param: dto.GetCandlesParam{Ticker: "AAPL"},
			want:  "pulse:candles:aapl:-:-:0",
		},
		{
			name:  "full filter set",
			param: dto.GetCandlesParam{Ticker: "AAPL", Start: &start, End: &end, Limit: 50},
			want:  "pulse:candles:aapl:20240501000000:20240508000000:50",
		},
		{
			name:  "awkward ticker characters are escaped",
			param: dto.GetCandlesParam{Ticker: "BRK B"},
			want:  "pulse:candles:brk_b:-:-:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, candleCacheKey(tt.param))
		})
	}
}

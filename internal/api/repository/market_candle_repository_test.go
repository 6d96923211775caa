package repository

import (
	"context"
	"testing"
	"time"

	"golang-stock-pulse/internal/api/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleRepo_Find(t *testing.T) {
	t.Parallel()

	t.Run("rows carry the joined ticker in insertion order", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		company := seedCompany(t, db, "Apple Inc", "AAPL", true)
		base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		seedCandle(t, db, company.ID, base)
		seedCandle(t, db, company.ID, base.Add(time.Hour))

		repo := NewCandleRepository(db)
		rows, err := repo.Find(context.Background(), dto.GetCandlesParam{})

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "AAPL", rows[0].Ticker, "ticker should come from the join")
		assert.Equal(t, base.Unix(), rows[0].Ts.Unix(), "rows should come back in insertion order")
		assert.Equal(t, base.Add(time.Hour).Unix(), rows[1].Ts.Unix())
		assert.True(t, rows[0].Open.Equal(decimal.NewFromFloat(101.5)), "open does not match")
		assert.True(t, rows[0].Close.Equal(decimal.NewFromFloat(102.0)), "close does not match")
		assert.Equal(t, int64(1200), rows[0].Volume, "volume does not match")
	})

	t.Run("ticker filter is case-insensitive and scoped to the company", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		apple := seedCompany(t, db, "Apple Inc", "AAPL", true)
		microsoft := seedCompany(t, db, "Microsoft Corp", "MSFT", true)
		ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		seedCandle(t, db, apple.ID, ts)
		seedCandle(t, db, microsoft.ID, ts)

		repo := NewCandleRepository(db)
		rows, err := repo.Find(context.Background(), dto.GetCandlesParam{Ticker: "aapl"})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "AAPL", rows[0].Ticker)
	})

	t.Run("ts bounds are inclusive start, exclusive end", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		company := seedCompany(t, db, "Apple Inc", "AAPL", true)
		day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		day2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
		day3 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		seedCandle(t, db, company.ID, day1)
		seedCandle(t, db, company.ID, day2)
		seedCandle(t, db, company.ID, day3)

		repo := NewCandleRepository(db)
		rows, err := repo.Find(context.Background(), dto.GetCandlesParam{Start: &day2, End: &day3})

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, day2.Unix(), rows[0].Ts.Unix())
	})

	t.Run("limit caps the row count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		company := seedCompany(t, db, "Apple Inc", "AAPL", true)
		base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		for i := 0; i < 5; i++ {
			seedCandle(t, db, company.ID, base.Add(time.Duration(i)*time.Hour))
		}

		repo := NewCandleRepository(db)
		rows, err := repo.Find(context.Background(), dto.GetCandlesParam{Limit: 3})

		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("empty table yields empty slice", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		repo := NewCandleRepository(db)
		rows, err := repo.Find(context.Background(), dto.GetCandlesParam{})

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

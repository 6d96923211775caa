package repository

import (
	"context"
	"testing"
	"time"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionRunRepo_Find(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("returns runs most recent first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedRun(t, db, entity.RunKindCandles, base)
		seedRun(t, db, entity.RunKindNews, base.Add(time.Hour))

		repo := NewIngestionRunRepository(db)
		runs, err := repo.Find(context.Background(), dto.GetRunsParam{})

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, entity.RunKindNews, runs[0].Kind, "most recent run comes first")
		assert.Equal(t, entity.RunKindCandles, runs[1].Kind)
	})

	t.Run("kind filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedRun(t, db, entity.RunKindCandles, base)
		seedRun(t, db, entity.RunKindNews, base.Add(time.Hour))

		repo := NewIngestionRunRepository(db)
		runs, err := repo.Find(context.Background(), dto.GetRunsParam{Kind: entity.RunKindNews})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, entity.RunKindNews, runs[0].Kind)
	})

	t.Run("limit caps the row count", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		for i := 0; i < 4; i++ {
			seedRun(t, db, entity.RunKindCandles, base.Add(time.Duration(i)*time.Hour))
		}

		repo := NewIngestionRunRepository(db)
		runs, err := repo.Find(context.Background(), dto.GetRunsParam{Limit: 2})

		require.NoError(t, err)
		require.Len(t, runs, 2)
		assert.Equal(t, base.Add(3*time.Hour).Unix(), runs[0].StartedAt.Unix(), "limit keeps the most recent runs")
	})

	t.Run("tickers and report survive the round trip", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		seedRun(t, db, entity.RunKindCandles, base)

		repo := NewIngestionRunRepository(db)
		runs, err := repo.Find(context.Background(), dto.GetRunsParam{})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, pq.StringArray{"AAPL"}, runs[0].Tickers, "tickers do not match")
		assert.JSONEq(t, `[{"ticker":"AAPL","inserted":1}]`, string(runs[0].Report), "report does not match")
		assert.Equal(t, 1, runs[0].Inserted)
	})
}

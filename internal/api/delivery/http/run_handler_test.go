package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/internal/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// newRunHandler builds a handler over the given repository fake.
func newRunHandler(repo *fakeRunRepo) *RunHandler {
	return NewRunHandler(service.NewRunService(repo, testLogger()), testLogger())
}

func TestRunHandler_GetRuns(t *testing.T) {
	t.Parallel()

	startedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRunRepo{runs: []entity.IngestionRun{
		{
			ID:         7,
			Kind:       entity.RunKindNews,
			Status:     entity.RunStatusPartial,
			Tickers:    pq.StringArray{"AAPL", "MSFT"},
			Report:     datatypes.JSON([]byte(`[{"ticker":"AAPL","inserted":3}]`)),
			Inserted:   3,
			Skipped:    1,
			Errors:     2,
			StartedAt:  startedAt,
			FinishedAt: startedAt.Add(90 * time.Second),
		},
	}}
	handler := newRunHandler(repo)

	rec := doGet(t, handler.GetRuns, "/")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.RunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, uint(7), got[0].ID)
	assert.Equal(t, entity.RunKindNews, got[0].Kind)
	assert.Equal(t, entity.RunStatusPartial, got[0].Status)
	assert.Equal(t, []string{"AAPL", "MSFT"}, got[0].Tickers)
	assert.JSONEq(t, `[{"ticker":"AAPL","inserted":3}]`, string(got[0].Report), "report does not match")
	assert.Equal(t, 3, got[0].Inserted)
	assert.Equal(t, 1, got[0].Skipped)
	assert.Equal(t, 2, got[0].Errors)
	assert.Equal(t, int64(90000), got[0].Duration, "duration should be reported in milliseconds")
}

func TestRunHandler_GetRuns_ParamForwarding(t *testing.T) {
	t.Parallel()

	repo := &fakeRunRepo{}
	handler := newRunHandler(repo)

	rec := doGet(t, handler.GetRuns, "/?kind=candles&limit=3")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RunKindCandles, repo.gotParam.Kind)
	assert.Equal(t, 3, repo.gotParam.Limit)
}

func TestRunHandler_GetRuns_StoreError(t *testing.T) {
	t.Parallel()

	handler := newRunHandler(&fakeRunRepo{err: errors.New("store down")})

	rec := doGet(t, handler.GetRuns, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to get ingestion runs"}`, rec.Body.String())
}

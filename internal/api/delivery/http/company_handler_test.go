package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCompanyHandler builds a handler over the given repository fake.
func newCompanyHandler(repo *fakeCompanyRepo) *CompanyHandler {
	return NewCompanyHandler(service.NewCompanyService(repo, testLogger()), testLogger())
}

func TestCompanyHandler_GetCompanies(t *testing.T) {
	t.Parallel()

	repo := &fakeCompanyRepo{companies: []entity.Company{
		{ID: 1, Name: "Apple Inc", Ticker: "AAPL", IsActive: true},
		{ID: 2, Name: "Delisted Co", Ticker: "GONE", IsActive: false},
	}}
	handler := newCompanyHandler(repo)

	rec := doGet(t, handler.GetCompanies, "/")

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.CompanyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].ID)
	assert.Equal(t, "Apple Inc", got[0].Name)
	assert.Equal(t, "AAPL", got[0].Ticker)
	assert.True(t, got[0].IsActive)
	assert.False(t, got[1].IsActive)
}

func TestCompanyHandler_GetCompanies_ParamForwarding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		wantTicker string
		wantLimit  int
	}{
		{name: "company param", target: "/?company=AAPL", wantTicker: "AAPL"},
		{name: "ticker param", target: "/?ticker=msft", wantTicker: "msft"},
		{name: "limit param", target: "/?limit=10", wantLimit: 10},
		{name: "bad limit is ignored", target: "/?limit=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeCompanyRepo{}
			handler := newCompanyHandler(repo)

			rec := doGet(t, handler.GetCompanies, tt.target)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantTicker, repo.gotParam.Ticker)
			assert.Equal(t, tt.wantLimit, repo.gotParam.Limit)
		})
	}
}

func TestCompanyHandler_GetCompanies_StoreError(t *testing.T) {
	t.Parallel()

	handler := newCompanyHandler(&fakeCompanyRepo{err: errors.New("store down")})

	rec := doGet(t, handler.GetCompanies, "/")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to get companies"}`, rec.Body.String())
}

func TestCompanyHandler_GetCompany(t *testing.T) {
	t.Parallel()

	repo := &fakeCompanyRepo{companies: []entity.Company{
		{ID: 1, Name: "Apple Inc", Ticker: "AAPL", IsActive: true},
	}}
	handler := newCompanyHandler(repo)

	rec := doGetWithParam(t, handler.GetCompany, "/aapl", "ticker", "aapl")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "aapl", repo.gotTicker, "ticker path param does not match")

	var got dto.CompanyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint(1), got.ID)
	assert.Equal(t, "Apple Inc", got.Name)
	assert.Equal(t, "AAPL", got.Ticker)
	assert.True(t, got.IsActive)
}

func TestCompanyHandler_GetCompany_NotFound(t *testing.T) {
	t.Parallel()

	handler := newCompanyHandler(&fakeCompanyRepo{})

	rec := doGetWithParam(t, handler.GetCompany, "/none", "ticker", "NONE")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Company not found"}`, rec.Body.String())
}

func TestCompanyHandler_GetCompany_StoreError(t *testing.T) {
	t.Parallel()

	handler := newCompanyHandler(&fakeCompanyRepo{err: errors.New("store down")})

	rec := doGetWithParam(t, handler.GetCompany, "/aapl", "ticker", "AAPL")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to get company"}`, rec.Body.String())
}

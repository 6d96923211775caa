package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// testLogger returns a logger that discards everything.
func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// doGet runs a handler against a GET request and returns the recorder.
func doGet(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

// doGetWithParam runs a handler against a GET request carrying one path
// parameter.
func doGetWithParam(t *testing.T, handler echo.HandlerFunc, target, name, value string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames(name)
	c.SetParamValues(value)
	require.NoError(t, handler(c))
	return rec
}

// fakeCompanyRepo serves canned companies and records the received filters.
type fakeCompanyRepo struct {
	companies []entity.Company
	err       error
	gotParam  dto.GetCompaniesParam
	gotTicker string
}

func (f *fakeCompanyRepo) Find(ctx context.Context, param dto.GetCompaniesParam) ([]entity.Company, error) {
	f.gotParam = param
	if f.err != nil {
		return nil, f.err
	}
	return f.companies, nil
}

func (f *fakeCompanyRepo) FindByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	f.gotTicker = ticker
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.companies {
		if strings.EqualFold(f.companies[i].Ticker, ticker) {
			return &f.companies[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// fakeArticleRepo serves canned articles and records the received filters.
type fakeArticleRepo struct {
	articles []entity.Article
	err      error
	gotParam dto.GetArticlesParam
}

func (f *fakeArticleRepo) Find(ctx context.Context, param dto.GetArticlesParam) ([]entity.Article, error) {
	f.gotParam = param
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

// fakeCandleRepo serves canned candle rows and records the received filters.
type fakeCandleRepo struct {
	rows     []dto.CandleRow
	err      error
	gotParam dto.GetCandlesParam
}

func (f *fakeCandleRepo) Find(ctx context.Context, param dto.GetCandlesParam) ([]dto.CandleRow, error) {
	f.gotParam = param
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// fakeRunRepo serves canned runs and records the received filters.
type fakeRunRepo struct {
	runs     []entity.IngestionRun
	err      error
	gotParam dto.GetRunsParam
}

func (f *fakeRunRepo) Find(ctx context.Context, param dto.GetRunsParam) ([]entity.IngestionRun, error) {
	f.gotParam = param
	if f.err != nil {
		return nil, f.err
	}
	return f.runs, nil
}

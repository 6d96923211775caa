package service

import (
	"context"
	"testing"
	"time"

	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testLogger returns a logger that discards everything.
func testLogger() *logger.Logger {
	return &logger.Logger{Logger: zap.NewNop()}
}

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{}, &entity.Article{}, &entity.MarketCandle{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

// seedCompany creates a test company in the database for testing.
func seedCompany(t *testing.T, db *gorm.DB, name, ticker string, active bool) *entity.Company {
	t.Helper()

	company := &entity.Company{
		Name:     name,
		Ticker:   ticker,
		IsActive: active,
	}
	err := db.Create(company).Error
	require.NoError(t, err, "failed to seed company")

	return company
}

// fakeRunRepository records created runs in memory. The runs table uses
// Postgres column types, so importer tests stub it out.
type fakeRunRepository struct {
	runs []*entity.IngestionRun
	err  error
}

func (f *fakeRunRepository) Create(ctx context.Context, run *entity.IngestionRun) error {
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	return nil
}

// fakeNotifier records sent messages in memory.
type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) SendMessage(text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, text)
	return nil
}

// fakeNewsRepository serves canned items per ticker.
type fakeNewsRepository struct {
	items   map[string][]dto.NewsItem
	errs    map[string]error
	calls   []string
	gotFrom time.Time
	gotTo   time.Time
}

func (f *fakeNewsRepository) CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsItem, error) {
	f.calls = append(f.calls, ticker)
	f.gotFrom, f.gotTo = from, to
	if err := f.errs[ticker]; err != nil {
		return nil, err
	}
	return f.items[ticker], nil
}

func (f *fakeNewsRepository) Name() string {
	return "fake-provider"
}

// fakeSentimentRepository classifies from a canned headline table, defaulting
// to Neutral with a model attached.
type fakeSentimentRepository struct {
	byHeadline map[string]*dto.SentimentResult
	err        error
	calls      int
}

func (f *fakeSentimentRepository) Classify(ctx context.Context, headline string) (*dto.SentimentResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if result, ok := f.byHeadline[headline]; ok {
		return result, nil
	}
	return &dto.SentimentResult{Label: entity.SentimentNeutral, Model: "fake-model"}, nil
}

package repository

import (
	"testing"
	"time"

	"golang-stock-pulse/internal/entity"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ingestionRunDDL mirrors ingestion_runs with SQLite-friendly column types.
// The entity itself declares Postgres array and JSONB columns that SQLite's
// migrator cannot create; inserts and scans still go through the entity.
type ingestionRunDDL struct {
	ID         uint `gorm:"primaryKey"`
	Kind       string
	Status     string
	Tickers    string
	Report     string
	Inserted   int
	Skipped    int
	Errors     int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (ingestionRunDDL) TableName() string {
	return "ingestion_runs"
}

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{}, &entity.Article{}, &entity.MarketCandle{}, &ingestionRunDDL{})
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

// seedArticle creates a test article in the database for testing.
func seedArticle(t *testing.T, db *gorm.DB, companyID uint, url string, published *time.Time) *entity.Article {
	t.Helper()

	article := &entity.Article{
		CompanyID:      companyID,
		Title:          "seeded article",
		URL:            url,
		Source:         "Example Wire",
		PublishedAt:    published,
		SentimentLabel: entity.SentimentNeutral,
	}
	err := db.Create(article).Error
	require.NoError(t, err, "failed to seed article")

	return article
}

// seedCandle creates a test candle in the database for testing.
func seedCandle(t *testing.T, db *gorm.DB, companyID uint, ts time.Time) *entity.MarketCandle {
	t.Helper()

	candle := &entity.MarketCandle{
		CompanyID: companyID,
		Ts:        ts,
		Open:      decimal.NewFromFloat(101.5),
		High:      decimal.NewFromFloat(102.25),
		Low:       decimal.NewFromFloat(100.75),
		Close:     decimal.NewFromFloat(102.0),
		Volume:    1200,
	}
	err := db.Create(candle).Error
	require.NoError(t, err, "failed to seed candle")

	return candle
}

// seedRun creates a test ingestion run in the database for testing.
func seedRun(t *testing.T, db *gorm.DB, kind string, startedAt time.Time) *entity.IngestionRun {
	t.Helper()

	run := &entity.IngestionRun{
		Kind:       kind,
		Status:     entity.RunStatusOK,
		Tickers:    pq.StringArray{"AAPL"},
		Report:     datatypes.JSON([]byte(`[{"ticker":"AAPL","inserted":1}]`)),
		Inserted:   1,
		StartedAt:  startedAt,
		FinishedAt: startedAt.Add(time.Minute),
	}
	err := db.Create(run).Error
	require.NoError(t, err, "failed to seed run")

	return run
}

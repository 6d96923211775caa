package repository

import (
	"testing"

	"golang-stock-pulse/internal/entity"
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

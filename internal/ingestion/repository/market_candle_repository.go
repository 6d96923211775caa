package repository

import (
	"context"

	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// candleBatchSize bounds the row count of one INSERT statement.
const candleBatchSize = 1000

// MarketCandleRepository defines write access to market candles.
type MarketCandleRepository interface {
	CreateIgnoreConflict(ctx context.Context, candles []entity.MarketCandle) (int64, error)
}

type marketCandleRepository struct {
	db *gorm.DB
}

// NewMarketCandleRepository creates a new GORM-based market candle repository.
func NewMarketCandleRepository(db *gorm.DB) MarketCandleRepository {
	return &marketCandleRepository{db: db}
}

// CreateIgnoreConflict bulk-inserts candles, silently dropping rows that
// collide on (company_id, ts). It returns the number of rows actually created.
func (r *marketCandleRepository) CreateIgnoreConflict(ctx context.Context, candles []entity.MarketCandle) (int64, error) {
	if len(candles) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "ts"}},
			DoNothing: true,
		}).CreateInBatches(&candles, candleBatchSize)
		if res.Error != nil {
			return res.Error
		}
		inserted = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

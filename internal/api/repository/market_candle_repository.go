package repository

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// CandleRepository defines the interface for market candle read operations.
type CandleRepository interface {
	Find(ctx context.Context, param dto.GetCandlesParam) ([]dto.CandleRow, error)
}

// NewCandleRepository creates a new GORM-based market candle repository.
func NewCandleRepository(db *gorm.DB) CandleRepository {
	return &candleRepository{db: db}
}

type candleRepository struct {
	db *gorm.DB
}

// Find retrieves candles matching the given filters in insertion order.
func (r *candleRepository) Find(ctx context.Context, param dto.GetCandlesParam) ([]dto.CandleRow, error) {
	query := r.db.WithContext(ctx).Model(&entity.MarketCandle{}).
		Select("market_candle.id, companies.ticker, market_candle.ts, market_candle.open, market_candle.high, market_candle.low, market_candle.close, market_candle.volume").
		Joins("JOIN companies ON companies.id = market_candle.company_id")

	if param.Ticker != "" {
		query = query.Where("LOWER(companies.ticker) = LOWER(?)", param.Ticker)
	}
	if param.Start != nil {
		query = query.Where("market_candle.ts >= ?", *param.Start)
	}
	if param.End != nil {
		query = query.Where("market_candle.ts < ?", *param.End)
	}
	if param.Limit > 0 {
		query = query.Limit(param.Limit)
	}

	var rows []dto.CandleRow
	if err := query.Order("market_candle.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

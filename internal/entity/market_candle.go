package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketCandle represents a single OHLCV bar for a company. A company can
// hold at most one candle per timestamp.
type MarketCandle struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	CompanyID uint            `gorm:"not null;uniqueIndex:uniq_market_candle_company_ts,priority:1;index:idx_market_candle_company_ts,priority:1" json:"company_id"`
	Company   Company         `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Ts        time.Time       `gorm:"not null;uniqueIndex:uniq_market_candle_company_ts,priority:2;index:idx_market_candle_company_ts,priority:2;index:idx_market_candle_ts,sort:desc" json:"ts"`
	Open      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"open"`
	High      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"high"`
	Low       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"low"`
	Close     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"close"`
	Volume    int64           `gorm:"not null" json:"volume"`
}

// TableName specifies the table name for the MarketCandle model.
func (MarketCandle) TableName() string {
	return "market_candle"
}

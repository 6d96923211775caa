package dto

import (
	"github.com/shopspring/decimal"
)

// CandleRecord is one OHLCV entry as it appears in a candle source file.
// Volume is decoded as a decimal so integer and float encodings both parse.
type CandleRecord struct {
	Time   string          `json:"time"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// CandleImportResult reports the outcome for one ticker of a candle run.
type CandleImportResult struct {
	Ticker   string `json:"ticker"`
	Inserted int    `json:"inserted"`
	Failure  string `json:"failure,omitempty"`
}

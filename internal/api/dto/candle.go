package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CandleResponse is the DTO for API responses containing market candle details.
type CandleResponse struct {
	ID      uint            `json:"id"`
	Company string          `json:"company"`
	Ts      time.Time       `json:"ts"`
	Open    decimal.Decimal `json:"open"`
	High    decimal.Decimal `json:"high"`
	Low     decimal.Decimal `json:"low"`
	Close   decimal.Decimal `json:"close"`
	Volume  int64           `json:"volume"`
}

// CandleRow is a candle joined with its company ticker, as read from the
// store. It is flat so cached copies survive a JSON round trip.
type CandleRow struct {
	ID     uint            `json:"id"`
	Ticker string          `json:"ticker"`
	Ts     time.Time       `json:"ts"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume int64           `json:"volume"`
}

// GetCandlesParam holds the filters for a candle listing. Start is an
// inclusive lower bound and End an exclusive upper bound on ts.
type GetCandlesParam struct {
	Ticker string
	Start  *time.Time
	End    *time.Time
	Limit  int
}

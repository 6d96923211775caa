package dto

import (
	"encoding/json"
	"time"
)

// RunResponse is the DTO for API responses containing ingestion run details.
type RunResponse struct {
	ID        uint            `json:"id"`
	Kind      string          `json:"kind"`
	Status    string          `json:"status"`
	Tickers   []string        `json:"tickers"`
	Report    json.RawMessage `json:"report"`
	Inserted  int             `json:"inserted"`
	Skipped   int             `json:"skipped"`
	Errors    int             `json:"errors"`
	StartedAt time.Time       `json:"started_at"`
	Duration  int64           `json:"duration_ms"`
}

// GetRunsParam holds the filters for an ingestion run listing.
type GetRunsParam struct {
	Kind  string
	Limit int
}

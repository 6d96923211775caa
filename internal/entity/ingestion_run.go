package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Ingestion run kinds.
const (
	RunKindCandles = "candles"
	RunKindNews    = "news"
)

// Ingestion run statuses. A run is partial when at least one ticker failed.
const (
	RunStatusOK      = "ok"
	RunStatusPartial = "partial"
)

// IngestionRun records the outcome of one importer invocation. Report carries
// the per-ticker result list as JSON.
type IngestionRun struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Kind       string         `gorm:"size:20;not null" json:"kind"`
	Status     string         `gorm:"size:20;not null" json:"status"`
	Tickers    pq.StringArray `gorm:"type:text[]" json:"tickers"`
	Report     datatypes.JSON `json:"report"`
	Inserted   int            `gorm:"not null" json:"inserted"`
	Skipped    int            `gorm:"not null" json:"skipped"`
	Errors     int            `gorm:"not null" json:"errors"`
	StartedAt  time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt time.Time      `gorm:"not null" json:"finished_at"`
}

// TableName specifies the table name for the IngestionRun model.
func (IngestionRun) TableName() string {
	return "ingestion_runs"
}

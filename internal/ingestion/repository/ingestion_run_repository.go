package repository

import (
	"context"

	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// IngestionRunRepository records importer run outcomes.
type IngestionRunRepository interface {
	Create(ctx context.Context, run *entity.IngestionRun) error
}

type ingestionRunRepository struct {
	db *gorm.DB
}

// NewIngestionRunRepository creates a new GORM-based ingestion run repository.
func NewIngestionRunRepository(db *gorm.DB) IngestionRunRepository {
	return &ingestionRunRepository{db: db}
}

// Create persists a new ingestion run record.
func (r *ingestionRunRepository) Create(ctx context.Context, run *entity.IngestionRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

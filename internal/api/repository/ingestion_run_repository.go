package repository

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// IngestionRunRepository defines the interface for ingestion run read operations.
type IngestionRunRepository interface {
	Find(ctx context.Context, param dto.GetRunsParam) ([]entity.IngestionRun, error)
}

// NewIngestionRunRepository creates a new GORM-based ingestion run repository.
func NewIngestionRunRepository(db *gorm.DB) IngestionRunRepository {
	return &ingestionRunRepository{db: db}
}

type ingestionRunRepository struct {
	db *gorm.DB
}

// Find retrieves ingestion runs matching the given filters, most recent first.
func (r *ingestionRunRepository) Find(ctx context.Context, param dto.GetRunsParam) ([]entity.IngestionRun, error) {
	query := r.db.WithContext(ctx).Model(&entity.IngestionRun{})

	if param.Kind != "" {
		query = query.Where("kind = ?", param.Kind)
	}
	if param.Limit > 0 {
		query = query.Limit(param.Limit)
	}

	var runs []entity.IngestionRun
	if err := query.Order("started_at desc").Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

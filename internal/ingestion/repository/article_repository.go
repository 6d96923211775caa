package repository

import (
	"context"

	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// articleBatchSize bounds the row count of one INSERT statement.
const articleBatchSize = 500

// ArticleRepository defines write access to news articles.
type ArticleRepository interface {
	CreateIgnoreConflict(ctx context.Context, articles []entity.Article) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// CreateIgnoreConflict bulk-inserts articles, silently dropping rows whose
// URL already exists. It returns the number of rows actually created.
func (r *articleRepository) CreateIgnoreConflict(ctx context.Context, articles []entity.Article) (int64, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	var inserted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoNothing: true,
		}).CreateInBatches(&articles, articleBatchSize)
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

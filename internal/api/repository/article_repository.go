package repository

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// ArticleRepository defines the interface for article read operations.
type ArticleRepository interface {
	Find(ctx context.Context, param dto.GetArticlesParam) ([]entity.Article, error)
}

// NewArticleRepository creates a new GORM-based article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

type articleRepository struct {
	db *gorm.DB
}

// Find retrieves articles matching the given filters, newest row first.
func (r *articleRepository) Find(ctx context.Context, param dto.GetArticlesParam) ([]entity.Article, error) {
	query := r.db.WithContext(ctx).Model(&entity.Article{}).Preload("Company")

	if param.Ticker != "" {
		query = query.
			Joins("JOIN companies ON companies.id = articles.company_id").
			Where("LOWER(companies.ticker) = LOWER(?)", param.Ticker)
	}
	if param.Start != nil {
		query = query.Where("articles.published_at >= ?", *param.Start)
	}
	if param.End != nil {
		query = query.Where("articles.published_at < ?", *param.End)
	}
	if param.Limit > 0 {
		query = query.Limit(param.Limit)
	}

	var articles []entity.Article
	if err := query.Order("articles.id desc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

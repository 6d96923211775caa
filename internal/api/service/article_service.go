package service

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/repository"
	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/pkg/logger"
)

// ArticleService defines the interface for reading articles.
type ArticleService interface {
	GetArticles(ctx context.Context, param dto.GetArticlesParam) ([]*dto.ArticleResponse, error)
}

// NewArticleService creates a new article service.
func NewArticleService(articleRepo repository.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

type articleService struct {
	articleRepo repository.ArticleRepository
	logger      *logger.Logger
}

// GetArticles retrieves articles matching the given filters, newest first.
func (s *articleService) GetArticles(ctx context.Context, param dto.GetArticlesParam) ([]*dto.ArticleResponse, error) {
	articles, err := s.articleRepo.Find(ctx, param)
	if err != nil {
		s.logger.Error("Failed to get articles", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, s.mapToArticleResponse(&article))
	}
	return responses, nil
}

// mapToArticleResponse maps an entity.Article to a dto.ArticleResponse.
func (s *articleService) mapToArticleResponse(article *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		ID:             article.ID,
		Company:        article.Company.Ticker,
		Title:          article.Title,
		Source:         article.Source,
		Published:      article.PublishedAt,
		SentimentLabel: article.SentimentLabel,
		ExternalURL:    article.URL,
	}
}

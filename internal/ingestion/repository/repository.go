package repository

import (
	"context"
	"time"

	"golang-stock-pulse/internal/ingestion/dto"
)

// SentimentRepository classifies a headline into one of the three sentiment
// labels. Implementations return an error only for transport or provider
// failures; unrecognized replies degrade to Neutral.
type SentimentRepository interface {
	Classify(ctx context.Context, headline string) (*dto.SentimentResult, error)
}

// NewsRepository fetches company news from an external provider.
type NewsRepository interface {
	CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsItem, error)
	Name() string
}

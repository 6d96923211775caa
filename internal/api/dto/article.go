package dto

import (
	"time"
)

// ArticleResponse is the DTO for API responses containing article details.
type ArticleResponse struct {
	ID             uint       `json:"id"`
	Company        string     `json:"company"`
	Title          string     `json:"title"`
	Source         string     `json:"source"`
	Published      *time.Time `json:"published"`
	SentimentLabel string     `json:"sentiment_label"`
	ExternalURL    string     `json:"external_url"`
}

// ArticleListResponse wraps article results with an ingestion status, for
// clients that poll while a first import is still filling the store.
type ArticleListResponse struct {
	Status  string             `json:"status"`
	Count   int                `json:"count"`
	Results []*ArticleResponse `json:"results"`
}

// GetArticlesParam holds the filters for an article listing. Start is an
// inclusive lower bound and End an exclusive upper bound on published_at.
type GetArticlesParam struct {
	Ticker string
	Start  *time.Time
	End    *time.Time
	Limit  int
}

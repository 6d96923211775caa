package entity

import (
	"time"
)

// Sentiment labels the classifier may attach to an article.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Article represents a news article tied to a company. The URL is the
// natural key: re-ingesting the same article is a no-op.
type Article struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	CompanyID      uint       `gorm:"not null;index:idx_articles_company_published,priority:1" json:"company_id"`
	Company        Company    `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"-"`
	Title          string     `gorm:"size:512;not null" json:"title"`
	URL            string     `gorm:"uniqueIndex;not null" json:"url"`
	Source         string     `gorm:"size:150" json:"source"`
	PublishedAt    *time.Time `gorm:"index:idx_articles_company_published,priority:2,sort:desc;index:idx_articles_published,sort:desc" json:"published_at,omitempty"`
	SentimentLabel string     `gorm:"size:10" json:"sentiment_label,omitempty"`
	SentimentScore *float64   `json:"sentiment_score,omitempty"`
	SentimentModel string     `gorm:"size:80" json:"sentiment_model,omitempty"`
	SentimentLang  string     `gorm:"size:20" json:"sentiment_lang,omitempty"`
	SentimentAt    *time.Time `json:"sentiment_at,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the Article model.
func (Article) TableName() string {
	return "articles"
}

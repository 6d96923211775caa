package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang-stock-pulse/internal/ingestion/config"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/common"
	"golang-stock-pulse/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

// rssNewsRepository fetches company news from a per-ticker RSS feed.
type rssNewsRepository struct {
	cfg    *config.Config
	log    *logger.Logger
	parser *gofeed.Parser
}

// NewRSSNewsRepository creates a new RSS-backed NewsRepository.
func NewRSSNewsRepository(cfg *config.Config, log *logger.Logger) (NewsRepository, error) {
	if cfg.RSS.FeedURLTemplate == "" {
		return nil, fmt.Errorf("rss feed url template is not configured")
	}
	return &rssNewsRepository{
		cfg:    cfg,
		log:    log,
		parser: gofeed.NewParser(),
	}, nil
}

// Name identifies the provider. It doubles as the source fallback for items
// that do not carry one.
func (r *rssNewsRepository) Name() string {
	return common.ProviderRSS
}

// CompanyNews parses the ticker feed and keeps items inside [from, to].
// Items without a publication date are kept with a zero epoch.
func (r *rssNewsRepository) CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsItem, error) {
	feedURL := fmt.Sprintf(r.cfg.RSS.FeedURLTemplate, strings.ToUpper(ticker))
	r.log.Info("Processing RSS feed", logger.StringField("url", feedURL))

	feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	items := make([]dto.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		var epoch int64
		if item.PublishedParsed != nil {
			published := item.PublishedParsed.UTC()
			if published.Before(from) || published.After(to) {
				continue
			}
			epoch = published.Unix()
		}

		headline := strings.TrimSpace(item.Title)
		if headline == "" {
			headline = htmlToText(item.Description)
		}

		items = append(items, dto.NewsItem{
			Datetime: epoch,
			Headline: headline,
			Source:   sourceFromLink(item.Link, feed.Title),
			Summary:  htmlToText(item.Description),
			URL:      item.Link,
		})
	}

	return items, nil
}

// htmlToText strips markup from an RSS description.
func htmlToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}

// sourceFromLink derives a source name from the item link host.
func sourceFromLink(link, fallback string) string {
	if u, err := url.Parse(link); err == nil && u.Host != "" {
		return strings.TrimPrefix(u.Host, "www.")
	}
	return fallback
}

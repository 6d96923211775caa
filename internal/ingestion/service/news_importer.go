package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/internal/ingestion/repository"
	"golang-stock-pulse/pkg/logger"
	"golang-stock-pulse/pkg/telegram"
	"golang-stock-pulse/pkg/utils"

	"github.com/lib/pq"
)

// maxTitleLen bounds the stored article title.
const maxTitleLen = 512

// NewsImportOptions controls one news import run.
type NewsImportOptions struct {
	Days          int
	Tickers       []string
	FromCompanies bool
	MaxPerCompany int
	Throttle      time.Duration
}

// NewsImporter fetches company news, labels each headline with a sentiment
// and persists the batch idempotently.
type NewsImporter struct {
	logger    *logger.Logger
	companies repository.CompanyRepository
	articles  repository.ArticleRepository
	runs      repository.IngestionRunRepository
	news      repository.NewsRepository
	sentiment repository.SentimentRepository
	notifier  telegram.Notifier
}

// NewNewsImporter creates a new NewsImporter.
func NewNewsImporter(
	log *logger.Logger,
	companies repository.CompanyRepository,
	articles repository.ArticleRepository,
	runs repository.IngestionRunRepository,
	news repository.NewsRepository,
	sentiment repository.SentimentRepository,
	notifier telegram.Notifier,
) *NewsImporter {
	return &NewsImporter{
		logger:    log,
		companies: companies,
		articles:  articles,
		runs:      runs,
		news:      news,
		sentiment: sentiment,
		notifier:  notifier,
	}
}

// Import runs one news import over the resolved ticker universe. The time
// window is computed once for the whole run. Tickers are processed
// independently: an unknown company or a provider failure counts one error
// on its own result and the run moves on.
func (s *NewsImporter) Import(ctx context.Context, opts NewsImportOptions) ([]dto.NewsImportResult, error) {
	startedAt := time.Now().UTC()

	tickers, err := resolveTickers(ctx, s.companies, opts.Tickers, opts.FromCompanies)
	if err != nil {
		return nil, err
	}

	days := opts.Days
	if days <= 0 {
		days = 7
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -days)

	results := make([]dto.NewsImportResult, 0, len(tickers))
	for _, ticker := range tickers {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		result := s.importTicker(ctx, ticker, from, to, opts.MaxPerCompany)
		s.logger.Info("News import finished for ticker",
			logger.StringField("ticker", ticker),
			logger.IntField("inserted", result.Inserted),
			logger.IntField("skipped", result.Skipped),
			logger.IntField("errors", result.Errors),
		)
		results = append(results, result)

		if opts.Throttle > 0 {
			time.Sleep(opts.Throttle)
		}
	}

	s.finishRun(ctx, tickers, results, startedAt)
	return results, nil
}

// importTicker fetches, labels and persists the news of one ticker.
func (s *NewsImporter) importTicker(ctx context.Context, ticker string, from, to time.Time, maxPerCompany int) dto.NewsImportResult {
	result := dto.NewsImportResult{Ticker: ticker}

	company, err := s.companies.FindByTicker(ctx, ticker)
	if err != nil {
		return s.tickerFailure(ticker, fmt.Errorf("company lookup for %s failed: %w", ticker, err))
	}

	items, err := s.news.CompanyNews(ctx, ticker, from, to)
	if err != nil {
		return s.tickerFailure(ticker, err)
	}

	// Most recent first; items without an epoch sort last.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Datetime > items[j].Datetime
	})
	if maxPerCompany > 0 && len(items) > maxPerCompany {
		items = items[:maxPerCompany]
	}

	toCreate := make([]entity.Article, 0, len(items))
	for _, item := range items {
		if item.URL == "" {
			result.Skipped++
			continue
		}
		if !isValidArticleURL(item.URL) {
			result.Errors++
			continue
		}

		toCreate = append(toCreate, s.buildArticle(ctx, company.ID, ticker, item))
	}

	inserted, err := s.articles.CreateIgnoreConflict(ctx, toCreate)
	if err != nil {
		return s.tickerFailure(ticker, err)
	}
	result.Inserted = int(inserted)
	return result
}

// buildArticle maps a provider item onto an Article. A classification
// failure degrades the label to Neutral and leaves the model fields empty.
func (s *NewsImporter) buildArticle(ctx context.Context, companyID uint, ticker string, item dto.NewsItem) entity.Article {
	headline := strings.TrimSpace(item.Headline)

	sentimentLabel := entity.SentimentNeutral
	var sentimentModel string
	var sentimentAt *time.Time

	classified, err := s.sentiment.Classify(ctx, headline)
	if err != nil {
		s.logger.Warn("Sentiment classification failed",
			logger.StringField("ticker", ticker),
			logger.ErrorField(err),
		)
	} else if classified != nil && classified.Label != "" {
		sentimentLabel = classified.Label
		if classified.Model != "" {
			sentimentModel = classified.Model
			now := time.Now().UTC()
			sentimentAt = &now
		}
	}

	title := headline
	if title == "" {
		title = "(no title)"
	}

	source := item.Source
	if source == "" {
		source = s.news.Name()
	}

	return entity.Article{
		CompanyID:      companyID,
		Title:          utils.TruncateString(title, maxTitleLen),
		URL:            item.URL,
		Source:         source,
		PublishedAt:    utils.EpochToTimeUTC(item.Datetime),
		SentimentLabel: sentimentLabel,
		SentimentModel: sentimentModel,
		SentimentAt:    sentimentAt,
	}
}

// tickerFailure folds a whole-ticker error into its result.
func (s *NewsImporter) tickerFailure(ticker string, err error) dto.NewsImportResult {
	s.logger.Warn("News import failed for ticker",
		logger.StringField("ticker", ticker),
		logger.ErrorField(err),
	)
	return dto.NewsImportResult{Ticker: ticker, Errors: 1, Failure: err.Error()}
}

// finishRun records the run outcome and notifies, best effort.
func (s *NewsImporter) finishRun(ctx context.Context, tickers []string, results []dto.NewsImportResult, startedAt time.Time) {
	finishedAt := time.Now().UTC()

	var inserted, skipped, errorCount int
	status := entity.RunStatusOK
	for _, r := range results {
		inserted += r.Inserted
		skipped += r.Skipped
		errorCount += r.Errors
		if r.Failure != "" {
			status = entity.RunStatusPartial
		}
	}

	report, err := json.Marshal(results)
	if err != nil {
		s.logger.Error("Failed to marshal run report", logger.ErrorField(err))
		report = []byte("[]")
	}

	run := &entity.IngestionRun{
		Kind:       entity.RunKindNews,
		Status:     status,
		Tickers:    pq.StringArray(tickers),
		Report:     report,
		Inserted:   inserted,
		Skipped:    skipped,
		Errors:     errorCount,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.logger.Error("Failed to record ingestion run", logger.ErrorField(err))
	}

	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatNewsRunReport(results, startedAt, finishedAt)); err != nil {
			s.logger.Error("Failed to send run notification", logger.ErrorField(err))
		}
	}
}

// isValidArticleURL accepts only absolute http(s) URLs; anything else is a
// malformed item.
func isValidArticleURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

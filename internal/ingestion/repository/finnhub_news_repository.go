package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-stock-pulse/internal/ingestion/config"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/common"
	"golang-stock-pulse/pkg/logger"

	"golang.org/x/time/rate"
)

// finnhubNewsRepository fetches company news from the Finnhub REST API.
type finnhubNewsRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

// NewFinnhubNewsRepository creates a new Finnhub-backed NewsRepository.
func NewFinnhubNewsRepository(cfg *config.Config, log *logger.Logger) (NewsRepository, error) {
	if cfg.Finnhub.APIKey == "" {
		return nil, fmt.Errorf("finnhub api key is not configured")
	}

	maxRPM := cfg.Finnhub.MaxRequestPerMinute
	if maxRPM <= 0 {
		maxRPM = 60
	}
	secondsPerRequest := time.Minute / time.Duration(maxRPM)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &finnhubNewsRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		requestLimiter: requestLimiter,
	}, nil
}

// Name identifies the provider. It doubles as the source fallback for items
// that do not carry one.
func (r *finnhubNewsRepository) Name() string {
	return common.ProviderFinnhub
}

// CompanyNews fetches news for one ticker within the [from, to] window.
func (r *finnhubNewsRepository) CompanyNews(ctx context.Context, ticker string, from, to time.Time) ([]dto.NewsItem, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	params := url.Values{}
	params.Set("symbol", strings.ToUpper(ticker))
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))
	params.Set("token", r.cfg.Finnhub.APIKey)

	reqURL := fmt.Sprintf("%s/company-news?%s", strings.TrimRight(r.cfg.Finnhub.BaseURL, "/"), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Finnhub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.log.ErrorContext(ctx, "Received non-OK response from Finnhub API",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("ticker", ticker),
		)
		return nil, fmt.Errorf("received non-OK response from Finnhub API: %d - %s", resp.StatusCode, string(body))
	}

	var items []dto.NewsItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	r.log.DebugContext(ctx, "Fetched company news",
		logger.StringField("ticker", ticker),
		logger.IntField("items", len(items)),
	)

	return items, nil
}

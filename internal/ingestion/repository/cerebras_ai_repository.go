package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/internal/ingestion/config"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/logger"

	"golang.org/x/time/rate"
)

// cerebrasAIRepository classifies headlines through the Cerebras
// OpenAI-compatible chat completion endpoint.
type cerebrasAIRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewCerebrasAIRepository creates a new Cerebras-backed SentimentRepository.
func NewCerebrasAIRepository(cfg *config.Config, log *logger.Logger) (SentimentRepository, error) {
	if cfg.Cerebras.APIKey == "" {
		return nil, fmt.Errorf("cerebras api key is not configured")
	}

	maxRPM := cfg.Cerebras.MaxRequestPerMinute
	if maxRPM <= 0 {
		maxRPM = 60
	}
	secondsPerRequest := time.Minute / time.Duration(maxRPM)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &cerebrasAIRepository{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}, nil
}

// Classify labels a single headline. Empty headlines are Neutral without a
// provider call.
func (r *cerebrasAIRepository) Classify(ctx context.Context, headline string) (*dto.SentimentResult, error) {
	if strings.TrimSpace(headline) == "" {
		return &dto.SentimentResult{Label: entity.SentimentNeutral}, nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	payload := dto.ChatCompletionRequest{
		Model: r.cfg.Cerebras.Model,
		Messages: []dto.ChatMessage{
			{Role: "system", Content: sentimentInstruction},
			{Role: "user", Content: headline},
		},
		Stream:              false,
		Temperature:         0,
		TopP:                1,
		MaxCompletionTokens: 100,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := strings.TrimRight(r.cfg.Cerebras.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.cfg.Cerebras.APIKey))

	r.logger.Debug("Sending request to Cerebras API", logger.StringField("url", url), logger.StringField("model", r.cfg.Cerebras.Model))

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Cerebras API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		r.logger.Error("Received non-OK response from Cerebras API", logger.IntField("status_code", resp.StatusCode), logger.StringField("model", r.cfg.Cerebras.Model))
		return nil, fmt.Errorf("received non-OK response from Cerebras API: %d - %s", resp.StatusCode, string(body))
	}

	var completion dto.ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return &dto.SentimentResult{
		Label: normalizeSentimentLabel(extractResponseText(&completion)),
		Model: r.cfg.Cerebras.Model,
	}, nil
}

// extractResponseText walks the known reply locations in order and returns
// the first non-empty one.
func extractResponseText(resp *dto.ChatCompletionResponse) string {
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		if s := strings.TrimSpace(choice.Message.Content); s != "" {
			return s
		}
		if s := strings.TrimSpace(choice.Message.Reasoning); s != "" {
			return s
		}
		if s := strings.TrimSpace(choice.Text); s != "" {
			return s
		}
	}
	return strings.TrimSpace(resp.OutputText)
}

package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/internal/ingestion/config"
	"golang-stock-pulse/internal/ingestion/dto"
	"golang-stock-pulse/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// geminiAIRepository classifies headlines through the Google Gemini API.
type geminiAIRepository struct {
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
	genAiClient    *genai.Client
}

// NewGeminiAIRepository creates a new Gemini-backed SentimentRepository.
func NewGeminiAIRepository(cfg *config.Config, log *logger.Logger, genAiClient *genai.Client) (SentimentRepository, error) {
	maxRPM := cfg.Gemini.MaxRequestPerMinute
	if maxRPM <= 0 {
		maxRPM = 60
	}
	secondsPerRequest := time.Minute / time.Duration(maxRPM)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &geminiAIRepository{
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
		genAiClient:    genAiClient,
	}, nil
}

// Classify labels a single headline. Empty headlines are Neutral without a
// provider call.
func (r *geminiAIRepository) Classify(ctx context.Context, headline string) (*dto.SentimentResult, error) {
	if strings.TrimSpace(headline) == "" {
		return &dto.SentimentResult{Label: entity.SentimentNeutral}, nil
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	temperature := float32(0)
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(sentimentInstruction, "user"),
		Temperature:       &temperature,
		MaxOutputTokens:   100,
	}

	r.logger.Debug("Sending request to Gemini API", logger.StringField("model", r.cfg.Gemini.Model))

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Gemini.Model, genai.Text(headline), genConfig)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	return &dto.SentimentResult{
		Label: normalizeSentimentLabel(resp.Text()),
		Model: r.cfg.Gemini.Model,
	}, nil
}

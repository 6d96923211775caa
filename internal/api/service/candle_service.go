package service

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/repository"
	"golang-stock-pulse/pkg/logger"
)

// CandleService defines the interface for reading market candles.
type CandleService interface {
	GetCandles(ctx context.Context, param dto.GetCandlesParam) ([]*dto.CandleResponse, error)
}

// NewCandleService creates a new candle service.
func NewCandleService(candleRepo repository.CandleRepository, logger *logger.Logger) CandleService {
	return &candleService{
		candleRepo: candleRepo,
		logger:     logger,
	}
}

type candleService struct {
	candleRepo repository.CandleRepository
	logger     *logger.Logger
}

// GetCandles retrieves candles matching the given filters.
func (s *candleService) GetCandles(ctx context.Context, param dto.GetCandlesParam) ([]*dto.CandleResponse, error) {
	rows, err := s.candleRepo.Find(ctx, param)
	if err != nil {
		s.logger.Error("Failed to get candles", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.CandleResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, s.mapToCandleResponse(&row))
	}
	return responses, nil
}

// mapToCandleResponse maps a dto.CandleRow to a dto.CandleResponse.
func (s *candleService) mapToCandleResponse(row *dto.CandleRow) *dto.CandleResponse {
	return &dto.CandleResponse{
		ID:      row.ID,
		Company: row.Ticker,
		Ts:      row.Ts,
		Open:    row.Open,
		High:    row.High,
		Low:     row.Low,
		Close:   row.Close,
		Volume:  row.Volume,
	}
}

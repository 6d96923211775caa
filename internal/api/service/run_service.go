package service

import (
	"context"
	"encoding/json"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/repository"
	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/pkg/logger"
)

// RunService defines the interface for reading ingestion runs.
type RunService interface {
	GetRuns(ctx context.Context, param dto.GetRunsParam) ([]*dto.RunResponse, error)
}

// NewRunService creates a new ingestion run service.
func NewRunService(runRepo repository.IngestionRunRepository, logger *logger.Logger) RunService {
	return &runService{
		runRepo: runRepo,
		logger:  logger,
	}
}

type runService struct {
	runRepo repository.IngestionRunRepository
	logger  *logger.Logger
}

// GetRuns retrieves ingestion runs matching the given filters, most recent first.
func (s *runService) GetRuns(ctx context.Context, param dto.GetRunsParam) ([]*dto.RunResponse, error) {
	runs, err := s.runRepo.Find(ctx, param)
	if err != nil {
		s.logger.Error("Failed to get ingestion runs", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, s.mapToRunResponse(&run))
	}
	return responses, nil
}

// mapToRunResponse maps an entity.IngestionRun to a dto.RunResponse.
func (s *runService) mapToRunResponse(run *entity.IngestionRun) *dto.RunResponse {
	return &dto.RunResponse{
		ID:        run.ID,
		Kind:      run.Kind,
		Status:    run.Status,
		Tickers:   []string(run.Tickers),
		Report:    json.RawMessage(run.Report),
		Inserted:  run.Inserted,
		Skipped:   run.Skipped,
		Errors:    run.Errors,
		StartedAt: run.StartedAt,
		Duration:  run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
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

// CandleImportOptions controls one candle import run.
type CandleImportOptions struct {
	Dir           string
	Tickers       []string
	FromCompanies bool
	Throttle      time.Duration
}

// CandleImporter loads per-ticker candle exports into the store.
type CandleImporter struct {
	logger    *logger.Logger
	files     repository.CandleFileRepository
	companies repository.CompanyRepository
	candles   repository.MarketCandleRepository
	runs      repository.IngestionRunRepository
	notifier  telegram.Notifier
}

// NewCandleImporter creates a new CandleImporter.
func NewCandleImporter(
	log *logger.Logger,
	files repository.CandleFileRepository,
	companies repository.CompanyRepository,
	candles repository.MarketCandleRepository,
	runs repository.IngestionRunRepository,
	notifier telegram.Notifier,
) *CandleImporter {
	return &CandleImporter{
		logger:    log,
		files:     files,
		companies: companies,
		candles:   candles,
		runs:      runs,
		notifier:  notifier,
	}
}

// Import runs one candle import over the resolved ticker universe. Tickers
// are processed independently: a bad file or an unknown company fails only
// its own result, never the run. A ticker without a source file yields a
// zero-inserted result.
func (s *CandleImporter) Import(ctx context.Context, opts CandleImportOptions) ([]dto.CandleImportResult, error) {
	startedAt := time.Now().UTC()

	tickers, err := resolveTickers(ctx, s.companies, opts.Tickers, opts.FromCompanies)
	if err != nil {
		return nil, err
	}
	if err := s.files.EnsureDir(opts.Dir); err != nil {
		return nil, err
	}

	results := make([]dto.CandleImportResult, 0, len(tickers))
	for _, ticker := range tickers {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}

		records, err := s.files.Read(opts.Dir, ticker)
		if err != nil && errors.Is(err, fs.ErrNotExist) {
			results = append(results, dto.CandleImportResult{Ticker: ticker})
			continue
		}

		result := dto.CandleImportResult{Ticker: ticker}
		if err != nil {
			result.Failure = err.Error()
		} else if inserted, err := s.persistTicker(ctx, ticker, records); err != nil {
			result.Failure = err.Error()
		} else {
			result.Inserted = inserted
		}

		if result.Failure != "" {
			s.logger.Error("Candle import failed for ticker",
				logger.StringField("ticker", ticker),
				logger.StringField("reason", result.Failure),
			)
		} else {
			s.logger.Info("Candle import finished for ticker",
				logger.StringField("ticker", ticker),
				logger.IntField("inserted", result.Inserted),
			)
		}
		results = append(results, result)

		if opts.Throttle > 0 {
			time.Sleep(opts.Throttle)
		}
	}

	s.finishRun(ctx, tickers, results, startedAt)
	return results, nil
}

// persistTicker maps one ticker's records and stores them in a single
// conflict-ignoring batch. Records without a timestamp are dropped; an
// unparseable timestamp fails the whole ticker.
func (s *CandleImporter) persistTicker(ctx context.Context, ticker string, records []dto.CandleRecord) (int, error) {
	company, err := s.companies.FindByTicker(ctx, ticker)
	if err != nil {
		return 0, fmt.Errorf("company lookup for %s failed: %w", ticker, err)
	}

	toCreate := make([]entity.MarketCandle, 0, len(records))
	for _, record := range records {
		if strings.TrimSpace(record.Time) == "" {
			continue
		}
		ts, err := utils.ParseISOTimestamp(record.Time)
		if err != nil {
			return 0, err
		}
		toCreate = append(toCreate, entity.MarketCandle{
			CompanyID: company.ID,
			Ts:        ts,
			Open:      record.Open,
			High:      record.High,
			Low:       record.Low,
			Close:     record.Close,
			Volume:    record.Volume.IntPart(),
		})
	}

	inserted, err := s.candles.CreateIgnoreConflict(ctx, toCreate)
	if err != nil {
		return 0, err
	}
	return int(inserted), nil
}

// finishRun records the run outcome and notifies, best effort.
func (s *CandleImporter) finishRun(ctx context.Context, tickers []string, results []dto.CandleImportResult, startedAt time.Time) {
	finishedAt := time.Now().UTC()

	var inserted, failed int
	status := entity.RunStatusOK
	for _, r := range results {
		inserted += r.Inserted
		if r.Failure != "" {
			failed++
			status = entity.RunStatusPartial
		}
	}

	report, err := json.Marshal(results)
	if err != nil {
		s.logger.Error("Failed to marshal run report", logger.ErrorField(err))
		report = []byte("[]")
	}

	run := &entity.IngestionRun{
		Kind:       entity.RunKindCandles,
		Status:     status,
		Tickers:    pq.StringArray(tickers),
		Report:     report,
		Inserted:   inserted,
		Errors:     failed,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}
	if err := s.runs.Create(ctx, run); err != nil {
		s.logger.Error("Failed to record ingestion run", logger.ErrorField(err))
	}

	if s.notifier != nil {
		if err := s.notifier.SendMessage(telegram.FormatCandleRunReport(results, startedAt, finishedAt)); err != nil {
			s.logger.Error("Failed to send run notification", logger.ErrorField(err))
		}
	}
}

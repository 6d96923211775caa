package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang-stock-pulse/internal/ingestion/dto"
)

// candleFilePattern is the expected name of a per-ticker candle export.
const candleFilePattern = "%s_1h_7d.json"

// CandleFileRepository reads per-ticker candle exports from a local directory.
type CandleFileRepository interface {
	EnsureDir(dir string) error
	Read(dir, ticker string) ([]dto.CandleRecord, error)
}

type candleFileRepository struct{}

// NewCandleFileRepository creates a file-backed candle source.
func NewCandleFileRepository() CandleFileRepository {
	return &candleFileRepository{}
}

// EnsureDir verifies that the source directory exists before a run starts.
func (r *candleFileRepository) EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("candle source dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("candle source path %q is not a directory", dir)
	}
	return nil
}

// Read loads the candle export for one ticker. A missing file surfaces as an
// error satisfying errors.Is(err, fs.ErrNotExist).
func (r *candleFileRepository) Read(dir, ticker string) ([]dto.CandleRecord, error) {
	path := filepath.Join(dir, fmt.Sprintf(candleFilePattern, strings.ToUpper(ticker)))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []dto.CandleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse candle file %s: %w", path, err)
	}
	return records, nil
}

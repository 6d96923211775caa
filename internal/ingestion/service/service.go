package service

import (
	"context"
	"fmt"

	"golang-stock-pulse/internal/ingestion/repository"
)

// resolveTickers returns the ticker universe for a run: every active company
// when fromCompanies is set, otherwise the explicit list. Having neither is a
// configuration error and aborts before any per-ticker work.
func resolveTickers(ctx context.Context, companies repository.CompanyRepository, tickers []string, fromCompanies bool) ([]string, error) {
	if fromCompanies {
		active, err := companies.GetActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load active companies: %w", err)
		}
		symbols := make([]string, 0, len(active))
		for _, company := range active {
			symbols = append(symbols, company.Ticker)
		}
		return symbols, nil
	}

	if len(tickers) == 0 {
		return nil, fmt.Errorf("provide tickers or enable from-companies")
	}
	return tickers, nil
}

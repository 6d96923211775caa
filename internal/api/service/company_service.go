package service

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/repository"
	"golang-stock-pulse/internal/entity"
	"golang-stock-pulse/pkg/logger"
)

// CompanyService defines the interface for reading companies.
type CompanyService interface {
	GetCompanies(ctx context.Context, param dto.GetCompaniesParam) ([]*dto.CompanyResponse, error)
	GetCompany(ctx context.Context, ticker string) (*dto.CompanyResponse, error)
}

// NewCompanyService creates a new company service.
func NewCompanyService(companyRepo repository.CompanyRepository, logger *logger.Logger) CompanyService {
	return &companyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

type companyService struct {
	companyRepo repository.CompanyRepository
	logger      *logger.Logger
}

// GetCompanies retrieves companies matching the given filters.
func (s *companyService) GetCompanies(ctx context.Context, param dto.GetCompaniesParam) ([]*dto.CompanyResponse, error) {
	companies, err := s.companyRepo.Find(ctx, param)
	if err != nil {
		s.logger.Error("Failed to get companies", logger.ErrorField(err))
		return nil, err
	}

	responses := make([]*dto.CompanyResponse, 0, len(companies))
	for _, company := range companies {
		responses = append(responses, s.mapToCompanyResponse(&company))
	}
	return responses, nil
}

// GetCompany retrieves a single company by ticker. A miss surfaces as
// gorm.ErrRecordNotFound for the handler to translate.
func (s *companyService) GetCompany(ctx context.Context, ticker string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return s.mapToCompanyResponse(company), nil
}

// mapToCompanyResponse maps an entity.Company to a dto.CompanyResponse.
func (s *companyService) mapToCompanyResponse(company *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:       company.ID,
		Name:     company.Name,
		Ticker:   company.Ticker,
		IsActive: company.IsActive,
	}
}

package repository

import (
	"context"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// CompanyRepository defines the interface for company read operations.
type CompanyRepository interface {
	Find(ctx context.Context, param dto.GetCompaniesParam) ([]entity.Company, error)
	FindByTicker(ctx context.Context, ticker string) (*entity.Company, error)
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

type companyRepository struct {
	db *gorm.DB
}

// Find retrieves companies matching the given filters, ordered by ID.
func (r *companyRepository) Find(ctx context.Context, param dto.GetCompaniesParam) ([]entity.Company, error) {
	query := r.db.WithContext(ctx).Model(&entity.Company{})

	if param.Ticker != "" {
		query = query.Where("LOWER(ticker) = LOWER(?)", param.Ticker)
	}
	if param.Limit > 0 {
		query = query.Limit(param.Limit)
	}

	var companies []entity.Company
	if err := query.Order("id asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByTicker retrieves a single company by its ticker, case-insensitive.
func (r *companyRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).
		Where("LOWER(ticker) = LOWER(?)", ticker).
		First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

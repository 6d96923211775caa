package repository

import (
	"context"

	"golang-stock-pulse/internal/entity"

	"gorm.io/gorm"
)

// CompanyRepository defines read access to tracked companies.
type CompanyRepository interface {
	GetActive(ctx context.Context) ([]entity.Company, error)
	FindByTicker(ctx context.Context, ticker string) (*entity.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new GORM-based company repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

// GetActive retrieves all active companies ordered by ticker.
func (r *companyRepository) GetActive(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("ticker asc").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByTicker retrieves a company by its ticker, case-insensitively.
func (r *companyRepository) FindByTicker(ctx context.Context, ticker string) (*entity.Company, error) {
	var company entity.Company
	if err := r.db.WithContext(ctx).Where("LOWER(ticker) = LOWER(?)", ticker).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

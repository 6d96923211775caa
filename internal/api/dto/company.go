package dto

// CompanyResponse is the DTO for API responses containing company details.
type CompanyResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Ticker   string `json:"ticker"`
	IsActive bool   `json:"is_active"`
}

// GetCompaniesParam holds the filters for a company listing. Ticker matches
// case-insensitively.
type GetCompaniesParam struct {
	Ticker string
	Limit  int
}

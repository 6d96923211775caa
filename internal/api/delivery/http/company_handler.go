package http

import (
	"errors"
	"net/http"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompanyHandler handles HTTP requests for companies.
type CompanyHandler struct {
	companyService service.CompanyService
	logger         *logger.Logger
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companyService service.CompanyService, logger *logger.Logger) *CompanyHandler {
	return &CompanyHandler{companyService: companyService, logger: logger}
}

// RegisterRoutes registers the company routes to the Echo group.
func (h *CompanyHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetCompanies)
	g.GET("/:ticker", h.GetCompany)
}

// GetCompanies godoc
// @Summary List companies
// @Description Get companies, optionally filtered by ticker
// @Tags companies
// @Produce  json
// @Param   company query   string false "Ticker filter (case-insensitive)"
// @Param   ticker  query   string false "Ticker filter (case-insensitive)"
// @Param   limit   query   int    false "Maximum number of rows"
// @Success 200 {array} dto.CompanyResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies [get]
func (h *CompanyHandler) GetCompanies(c echo.Context) error {
	param := dto.GetCompaniesParam{
		Ticker: queryTicker(c),
		Limit:  queryLimit(c),
	}

	companies, err := h.companyService.GetCompanies(c.Request().Context(), param)
	if err != nil {
		h.logger.Error("Failed to get companies", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get companies"})
	}
	return c.JSON(http.StatusOK, companies)
}

// GetCompany godoc
// @Summary Get a company
// @Description Get one company by its ticker (case-insensitive)
// @Tags companies
// @Produce  json
// @Param   ticker  path    string true "Company ticker"
// @Success 200 {object} dto.CompanyResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /companies/{ticker} [get]
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	company, err := h.companyService.GetCompany(c.Request().Context(), c.Param("ticker"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Company not found"})
		}
		h.logger.Error("Failed to get company", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get company"})
	}
	return c.JSON(http.StatusOK, company)
}

package http

import (
	"net/http"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CandleHandler handles HTTP requests for market candles.
type CandleHandler struct {
	candleService service.CandleService
	logger        *logger.Logger
}

// NewCandleHandler creates a new CandleHandler.
func NewCandleHandler(candleService service.CandleService, logger *logger.Logger) *CandleHandler {
	return &CandleHandler{candleService: candleService, logger: logger}
}

// RegisterRoutes registers the candle routes to the Echo group.
func (h *CandleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetCandles)
}

// GetCandles godoc
// @Summary List market candles
// @Description Get market candles, optionally filtered by company ticker and candle timestamp
// @Tags candles
// @Produce  json
// @Param   company query   string false "Company ticker filter (case-insensitive)"
// @Param   ticker  query   string false "Company ticker filter (case-insensitive)"
// @Param   start   query   string false "Candles on or after (YYYY-MM-DD)"
// @Param   end     query   string false "Candles on or before (YYYY-MM-DD)"
// @Param   limit   query   int    false "Maximum number of rows"
// @Success 200 {array} dto.CandleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /candles [get]
func (h *CandleHandler) GetCandles(c echo.Context) error {
	start, end, err := queryDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	param := dto.GetCandlesParam{
		Ticker: queryTicker(c),
		Start:  start,
		End:    end,
		Limit:  queryLimit(c),
	}

	candles, err := h.candleService.GetCandles(c.Request().Context(), param)
	if err != nil {
		h.logger.Error("Failed to get candles", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get candles"})
	}
	return c.JSON(http.StatusOK, candles)
}

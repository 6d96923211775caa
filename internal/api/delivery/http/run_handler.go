package http

import (
	"net/http"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// RunHandler handles HTTP requests for ingestion runs.
type RunHandler struct {
	runService service.RunService
	logger     *logger.Logger
}

// NewRunHandler creates a new RunHandler.
func NewRunHandler(runService service.RunService, logger *logger.Logger) *RunHandler {
	return &RunHandler{runService: runService, logger: logger}
}

// RegisterRoutes registers the ingestion run routes to the Echo group.
func (h *RunHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetRuns)
}

// GetRuns godoc
// @Summary List ingestion runs
// @Description Get ingestion run records, most recent first
// @Tags runs
// @Produce  json
// @Param   kind  query   string false "Run kind (candles or news)"
// @Param   limit query   int    false "Maximum number of rows"
// @Success 200 {array} dto.RunResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /runs [get]
func (h *RunHandler) GetRuns(c echo.Context) error {
	param := dto.GetRunsParam{
		Kind:  c.QueryParam("kind"),
		Limit: queryLimit(c),
	}

	runs, err := h.runService.GetRuns(c.Request().Context(), param)
	if err != nil {
		h.logger.Error("Failed to get ingestion runs", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get ingestion runs"})
	}
	return c.JSON(http.StatusOK, runs)
}

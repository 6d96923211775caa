package http

import (
	"net/http"

	"golang-stock-pulse/internal/api/dto"
	"golang-stock-pulse/internal/api/service"
	"golang-stock-pulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ArticleStatusOK and ArticleStatusLoading are the envelope statuses
// reported to polling clients.
const (
	ArticleStatusOK      = "ok"
	ArticleStatusLoading = "loading"
)

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	articleService service.ArticleService
	logger         *logger.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleService, logger *logger.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, logger: logger}
}

// RegisterRoutes registers the article routes to the Echo group.
func (h *ArticleHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetArticles)
}

// GetArticles godoc
// @Summary List articles
// @Description Get articles, newest first, optionally filtered by company ticker and published date
// @Tags articles
// @Produce  json
// @Param   company query   string false "Company ticker filter (case-insensitive)"
// @Param   ticker  query   string false "Company ticker filter (case-insensitive)"
// @Param   start   query   string false "Published on or after (YYYY-MM-DD)"
// @Param   end     query   string false "Published on or before (YYYY-MM-DD)"
// @Param   limit   query   int    false "Maximum number of rows"
// @Param   meta    query   string false "Set to 1, true or yes to wrap results in a status envelope"
// @Success 200 {array} dto.ArticleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /articles [get]
func (h *ArticleHandler) GetArticles(c echo.Context) error {
	start, end, err := queryDateRange(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	param := dto.GetArticlesParam{
		Ticker: queryTicker(c),
		Start:  start,
		End:    end,
		Limit:  queryLimit(c),
	}

	articles, err := h.articleService.GetArticles(c.Request().Context(), param)
	if err != nil {
		h.logger.Error("Failed to get articles", logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to get articles"})
	}

	if !wantMeta(c) {
		return c.JSON(http.StatusOK, articles)
	}

	status := ArticleStatusOK
	if len(articles) == 0 {
		status = ArticleStatusLoading
	}
	return c.JSON(http.StatusOK, dto.ArticleListResponse{
		Status:  status,
		Count:   len(articles),
		Results: articles,
	})
}

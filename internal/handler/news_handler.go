package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/validate"
)

// NewsHandler serves public news reads and the admin CRUD.
type NewsHandler struct {
	news repository.NewsRepository
}

// NewNewsHandler creates a new news handler.
func NewNewsHandler(news repository.NewsRepository) *NewsHandler {
	return &NewsHandler{news: news}
}

// ListPublic godoc
// @Summary List published news
// @Tags news
// @Produce json
// @Param q query string false "Full-text search over title, excerpt, content"
// @Param tag query string false "Tag filter"
// @Param limit query int false "Page size, clamped to [1,100]"
// @Param offset query int false "Page offset"
// @Success 200 {array} handler.NewsDTO
// @Router /news [get]
func (h *NewsHandler) ListPublic(c echo.Context) error {
	// The public feed only ever sees published rows.
	filter := repository.NewsFilter{
		Query:         c.QueryParam("q"),
		Tag:           c.QueryParam("tag"),
		PublishedOnly: true,
	}
	items, err := h.news.List(c.Request().Context(), filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return cachedJSON(c, toNewsDTOs(items))
}

// AdminList returns all news rows, drafts included, with a total.
func (h *NewsHandler) AdminList(c echo.Context) error {
	ctx := c.Request().Context()
	filter := repository.NewsFilter{
		Query: c.QueryParam("q"),
		Tag:   c.QueryParam("tag"),
	}

	items, err := h.news.List(ctx, filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	total, err := h.news.Count(ctx, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ListResponse{Items: items, Total: total})
}

// AdminGet returns one news row.
func (h *NewsHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	item, err := h.news.FindByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, item)
}

// AdminCreate inserts a news row after shape validation.
func (h *NewsHandler) AdminCreate(c echo.Context) error {
	var item model.News
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.News(&item); !res.OK {
		return validationFailed(res)
	}

	if err := h.news.Create(c.Request().Context(), &item); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, item)
}

// AdminUpdate applies a partial update.
func (h *NewsHandler) AdminUpdate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch model.NewsPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.NewsPatch(patch); !res.OK {
		return validationFailed(res)
	}

	item, err := h.news.Update(c.Request().Context(), id, patch)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, item)
}

// AdminDelete removes a news row.
func (h *NewsHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	removed, err := h.news.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "news not found", Code: "NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

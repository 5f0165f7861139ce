package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/validate"
)

// CoordHandler serves public coordinate reads and the admin CRUD.
type CoordHandler struct {
	coords repository.CoordRepository
}

// NewCoordHandler creates a new coordinate handler.
func NewCoordHandler(coords repository.CoordRepository) *CoordHandler {
	return &CoordHandler{coords: coords}
}

func coordFilterFromQuery(c echo.Context) repository.CoordFilter {
	return repository.CoordFilter{
		Query:    c.QueryParam("q"),
		Category: model.CoordCategory(c.QueryParam("category")),
		Tag:      c.QueryParam("tag"),
	}
}

// ListPublic godoc
// @Summary List shared coordinates
// @Tags coords
// @Produce json
// @Param category query string false "top10, notable or raid_spots"
// @Param limit query int false "Page size, clamped to [1,500]"
// @Param offset query int false "Page offset"
// @Success 200 {array} handler.CoordDTO
// @Router /coords [get]
func (h *CoordHandler) ListPublic(c echo.Context) error {
	coords, err := h.coords.List(c.Request().Context(), coordFilterFromQuery(c), listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return cachedJSON(c, toCoordDTOs(coords))
}

// AdminList returns coordinates with a total count.
func (h *CoordHandler) AdminList(c echo.Context) error {
	ctx := c.Request().Context()
	filter := coordFilterFromQuery(c)

	coords, err := h.coords.List(ctx, filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	total, err := h.coords.Count(ctx, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ListResponse{Items: coords, Total: total})
}

// AdminGet returns one coordinate.
func (h *CoordHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	coord, err := h.coords.FindByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, coord)
}

// AdminCreate inserts a coordinate after shape validation.
func (h *CoordHandler) AdminCreate(c echo.Context) error {
	var coord model.Coord
	if err := c.Bind(&coord); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.Coord(&coord); !res.OK {
		return validationFailed(res)
	}

	if err := h.coords.Create(c.Request().Context(), &coord); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, coord)
}

// AdminUpdate applies a partial update.
func (h *CoordHandler) AdminUpdate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch model.CoordPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.CoordPatch(patch); !res.OK {
		return validationFailed(res)
	}

	coord, err := h.coords.Update(c.Request().Context(), id, patch)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, coord)
}

// AdminDelete removes a coordinate.
func (h *CoordHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	removed, err := h.coords.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "coord not found", Code: "NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

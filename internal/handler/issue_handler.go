package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/validate"
)

// IssueHandler serves public issue reads and the admin CRUD.
type IssueHandler struct {
	issues repository.IssueRepository
}

// NewIssueHandler creates a new issue handler.
func NewIssueHandler(issues repository.IssueRepository) *IssueHandler {
	return &IssueHandler{issues: issues}
}

func issueFilterFromQuery(c echo.Context) repository.IssueFilter {
	return repository.IssueFilter{
		Query:  c.QueryParam("q"),
		Status: model.IssueStatus(c.QueryParam("status")),
		Tag:    c.QueryParam("tag"),
	}
}

// ListPublic godoc
// @Summary List tracked issues
// @Tags issues
// @Produce json
// @Param q query string false "Full-text search over title, content"
// @Param status query string false "Status filter"
// @Success 200 {array} handler.IssueDTO
// @Router /issues [get]
func (h *IssueHandler) ListPublic(c echo.Context) error {
	issues, err := h.issues.List(c.Request().Context(), issueFilterFromQuery(c), listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return cachedJSON(c, toIssueDTOs(issues))
}

// AdminList returns issues with a total count.
func (h *IssueHandler) AdminList(c echo.Context) error {
	ctx := c.Request().Context()
	filter := issueFilterFromQuery(c)

	issues, err := h.issues.List(ctx, filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	total, err := h.issues.Count(ctx, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ListResponse{Items: issues, Total: total})
}

// AdminGet returns one issue.
func (h *IssueHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	issue, err := h.issues.FindByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, issue)
}

// AdminCreate inserts an issue after shape validation.
func (h *IssueHandler) AdminCreate(c echo.Context) error {
	var issue model.Issue
	if err := c.Bind(&issue); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.Issue(&issue); !res.OK {
		return validationFailed(res)
	}
	if issue.Status == "" {
		issue.Status = model.IssueStatusOpen
	}

	if err := h.issues.Create(c.Request().Context(), &issue); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, issue)
}

// AdminUpdate applies a partial update.
func (h *IssueHandler) AdminUpdate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch model.IssuePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.IssuePatch(patch); !res.OK {
		return validationFailed(res)
	}

	issue, err := h.issues.Update(c.Request().Context(), id, patch)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, issue)
}

// AdminDelete removes an issue.
func (h *IssueHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	removed, err := h.issues.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "issue not found", Code: "NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

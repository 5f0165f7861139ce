package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"rootdex/internal/repository"
)

const publicCacheControl = "public, max-age=60, stale-while-revalidate=300"

// cachedJSON serializes payload once, derives a weak ETag from the bytes,
// and answers 304 when If-None-Match already carries it.
func cachedJSON(c echo.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`

	h := c.Response().Header()
	h.Set("ETag", etag)
	h.Set("Cache-Control", publicCacheControl)

	if match := c.Request().Header.Get("If-None-Match"); match != "" && strings.Contains(match, etag) {
		return c.NoContent(http.StatusNotModified)
	}
	return c.JSONBlob(http.StatusOK, body)
}

// listParams pulls pagination and ordering out of the query string.
// Malformed numbers become zero; the repository clamps everything anyway.
func listParams(c echo.Context) repository.ListParams {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return repository.ListParams{
		Limit:   limit,
		Offset:  offset,
		SortBy:  c.QueryParam("sort"),
		SortDir: c.QueryParam("dir"),
	}
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

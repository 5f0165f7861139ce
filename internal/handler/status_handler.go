package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/service"
)

// StatusHandler proxies the uptime vendor.
type StatusHandler struct {
	uptime service.UptimeService
}

// NewStatusHandler creates a new status handler.
func NewStatusHandler(uptime service.UptimeService) *StatusHandler {
	return &StatusHandler{uptime: uptime}
}

// Uptime godoc
// @Summary Site uptime summary
// @Tags status
// @Produce json
// @Success 200 {object} service.UptimeStatus
// @Failure 501 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /uptime [get]
func (h *StatusHandler) Uptime(c echo.Context) error {
	status, err := h.uptime.Status(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, status)
}

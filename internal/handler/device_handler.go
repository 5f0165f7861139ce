package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
	"rootdex/internal/model"
	"rootdex/internal/repository"
	"rootdex/internal/validate"
)

// DeviceHandler serves the public device catalog and the admin CRUD.
type DeviceHandler struct {
	devices repository.DeviceRepository
}

// NewDeviceHandler creates a new device handler.
func NewDeviceHandler(devices repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

func deviceFilterFromQuery(c echo.Context) repository.DeviceFilter {
	f := repository.DeviceFilter{
		Query:  c.QueryParam("q"),
		Brand:  c.QueryParam("brand"),
		Type:   c.QueryParam("type"),
		OS:     c.QueryParam("os"),
		Status: c.QueryParam("status"),
	}
	if raw := c.QueryParam("compatible"); raw != "" {
		if compatible, err := strconv.ParseBool(raw); err == nil {
			f.Compatible = &compatible
		}
	}
	return f
}

// ListPublic godoc
// @Summary List catalog devices
// @Tags devices
// @Produce json
// @Param q query string false "Full-text search over name, model, brand"
// @Param limit query int false "Page size, clamped to [1,100]"
// @Param offset query int false "Page offset"
// @Param sort query string false "Sort key (unknown keys fall back to name)"
// @Param dir query string false "asc or desc"
// @Success 200 {array} handler.DeviceDTO
// @Router /devices [get]
func (h *DeviceHandler) ListPublic(c echo.Context) error {
	devices, err := h.devices.List(c.Request().Context(), deviceFilterFromQuery(c), listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return cachedJSON(c, toDeviceDTOs(devices))
}

// AdminList returns devices with a total count for dashboard pagination.
func (h *DeviceHandler) AdminList(c echo.Context) error {
	ctx := c.Request().Context()
	filter := deviceFilterFromQuery(c)

	devices, err := h.devices.List(ctx, filter, listParams(c))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	total, err := h.devices.Count(ctx, filter)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ListResponse{Items: devices, Total: total})
}

// AdminGet returns one device with internal columns included.
func (h *DeviceHandler) AdminGet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	device, err := h.devices.FindByID(c.Request().Context(), id)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, device)
}

// AdminCreate inserts a device after shape validation.
func (h *DeviceHandler) AdminCreate(c echo.Context) error {
	var device model.Device
	if err := c.Bind(&device); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.Device(&device); !res.OK {
		return validationFailed(res)
	}

	if err := h.devices.Create(c.Request().Context(), &device); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, device)
}

// AdminUpdate applies a partial update; absent fields stay untouched.
func (h *DeviceHandler) AdminUpdate(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch model.DevicePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if res := validate.DevicePatch(patch); !res.OK {
		return validationFailed(res)
	}

	device, err := h.devices.Update(c.Request().Context(), id, patch)
	if err != nil {
		return notFoundOrInternal(err)
	}
	return c.JSON(http.StatusOK, device)
}

// AdminDelete removes a device.
func (h *DeviceHandler) AdminDelete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	removed, err := h.devices.Delete(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if !removed {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "device not found", Code: "NOT_FOUND",
		})
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// notFoundOrInternal maps a repository read error to 404 or 500.
func notFoundOrInternal(err error) error {
	if repository.IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: "record not found", Code: "NOT_FOUND",
		})
	}
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// validationFailed renders collected validator errors as a 400.
func validationFailed(res validate.Result) error {
	return echo.NewHTTPError(http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"code":   "VALIDATION_FAILED",
		"fields": res.Errors,
	})
}

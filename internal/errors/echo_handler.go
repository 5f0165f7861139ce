package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// EchoHandler returns an echo.HTTPErrorHandler rendering the standard
// {error, code} body. Outside production the internal-error message keeps
// its detail; in production it is replaced by a generic one.
func EchoHandler(production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

		switch e := err.(type) {
		case *HTTPError:
			status = e.StatusCode
			body = e.ToErrorResponse()
		case *echo.HTTPError:
			status = e.Code
			switch msg := e.Message.(type) {
			case ErrorResponse:
				body = msg
			case string:
				body = ErrorResponse{Error: msg, Code: codeForStatus(status)}
			default:
				body = ErrorResponse{Error: http.StatusText(status), Code: codeForStatus(status)}
			}
		default:
			if !production {
				body.Error = err.Error()
			}
		}

		if status >= http.StatusInternalServerError && production {
			body.Error = "internal server error"
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			c.Logger().Error(writeErr)
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "VALIDATION_FAILED"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}

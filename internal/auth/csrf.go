package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "rootdex/internal/errors"
)

// CSRFCookieName is the readable cookie mirrored by the X-CSRF-Token header.
const CSRFCookieName = "csrf_token"

// CSRFHeaderName is the request header mutating admin calls must send.
const CSRFHeaderName = "X-CSRF-Token"

// NewCSRFToken mints a fresh double-submit token.
func NewCSRFToken() string {
	return uuid.NewString()
}

// RequireCSRF enforces the double-submit pattern on mutating verbs: the
// X-CSRF-Token header must equal the csrf cookie. A cross-site attacker can
// make the browser send the cookie but cannot read it to fill the header.
func RequireCSRF(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return next(c)
		}

		cookie, err := c.Cookie(CSRFCookieName)
		if err != nil || cookie.Value == "" {
			return csrfMismatch()
		}
		header := c.Request().Header.Get(CSRFHeaderName)
		if header == "" || subtle.ConstantTimeCompare([]byte(header), []byte(cookie.Value)) != 1 {
			return csrfMismatch()
		}
		return next(c)
	}
}

func csrfMismatch() error {
	return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
		Error: "CSRF token mismatch",
		Code:  "CSRF_MISMATCH",
	})
}

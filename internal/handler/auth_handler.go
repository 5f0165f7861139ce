package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"rootdex/internal/auth"
	apperrors "rootdex/internal/errors"
	"rootdex/internal/service"
)

// AuthHandler handles the admin session endpoints.
type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie should be true
// whenever the site is served over HTTPS.
func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session user and the CSRF token the dashboard
// echoes back in the X-CSRF-Token header.
type LoginResponse struct {
	OK   bool        `json:"ok"`
	User interface{} `json:"user"`
	CSRF string      `json:"csrf"`
}

// Login godoc
// @Summary Admin login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	csrf := auth.NewCSRFToken()
	c.SetCookie(h.sessionCookie(token, auth.SessionTTL))
	c.SetCookie(h.csrfCookie(csrf, auth.SessionTTL))

	return c.JSON(http.StatusOK, LoginResponse{
		OK: true,
		User: map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
		},
		CSRF: csrf,
	})
}

// Logout clears both session cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -time.Hour))
	c.SetCookie(h.csrfCookie("", -time.Hour))
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Me returns the authenticated session identity.
func (h *AuthHandler) Me(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid session", Code: "UNAUTHORIZED",
		})
	}
	claims, ok := token.Claims.(*auth.SessionClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid session", Code: "UNAUTHORIZED",
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok": true,
		"user": map[string]interface{}{
			"id":       claims.UserID,
			"username": claims.Username,
		},
	})
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// csrfCookie is intentionally readable by script: the double-submit check
// needs the dashboard to copy it into a header.
func (h *AuthHandler) csrfCookie(value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CSRFCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: false,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

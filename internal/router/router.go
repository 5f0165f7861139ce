package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/golang-jwt/jwt/v5"

	"rootdex/internal/auth"
	"rootdex/internal/config"
	apperrors "rootdex/internal/errors"
	"rootdex/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	deviceHandler *handler.DeviceHandler,
	newsHandler *handler.NewsHandler,
	coordHandler *handler.CoordHandler,
	issueHandler *handler.IssueHandler,
	proposalHandler *handler.ProposalHandler,
	statusHandler *handler.StatusHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	if cfg.AllowedOrigin != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     []string{cfg.AllowedOrigin},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderContentType, auth.CSRFHeaderName},
			AllowCredentials: true,
		}))
	}

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = apperrors.EchoHandler(cfg.IsProduction())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public reads
	api.GET("/devices", deviceHandler.ListPublic)
	api.GET("/news", newsHandler.ListPublic)
	api.GET("/issues", issueHandler.ListPublic)
	api.GET("/coords", coordHandler.ListPublic)

	// Uptime proxy, mounted on both historical paths
	api.GET("/uptime", statusHandler.Uptime)
	e.GET("/status/uptime", statusHandler.Uptime)

	// Public write: burst window plus daily cap, skipped under test
	submitMiddleware := []echo.MiddlewareFunc{}
	if !cfg.IsTest() {
		submitMiddleware = append(submitMiddleware,
			rateLimiter(rate.Every(time.Minute/5), 5, 3*time.Minute),
			rateLimiter(rate.Every(24*time.Hour/30), 30, 24*time.Hour),
		)
	}
	api.POST("/device-proposals", proposalHandler.Submit, submitMiddleware...)

	admin := e.Group("/admin")
	if cfg.IsTest() {
		admin.POST("/login", authHandler.Login)
	} else {
		admin.POST("/login", authHandler.Login, rateLimiter(rate.Every(time.Minute/10), 10, 5*time.Minute))
	}

	sessionRequired := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + auth.SessionCookieName,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.SessionClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "missing or invalid session", Code: "UNAUTHORIZED",
			})
		},
	})

	admin.POST("/logout", authHandler.Logout, sessionRequired)
	admin.GET("/me", authHandler.Me, sessionRequired)

	// Mutating admin verbs also need the double-submit CSRF header.
	adminAPI := admin.Group("/api", sessionRequired, auth.RequireCSRF)

	adminAPI.GET("/devices", deviceHandler.AdminList)
	adminAPI.GET("/devices/:id", deviceHandler.AdminGet)
	adminAPI.POST("/devices", deviceHandler.AdminCreate)
	adminAPI.PUT("/devices/:id", deviceHandler.AdminUpdate)
	adminAPI.DELETE("/devices/:id", deviceHandler.AdminDelete)

	adminAPI.GET("/news", newsHandler.AdminList)
	adminAPI.GET("/news/:id", newsHandler.AdminGet)
	adminAPI.POST("/news", newsHandler.AdminCreate)
	adminAPI.PUT("/news/:id", newsHandler.AdminUpdate)
	adminAPI.DELETE("/news/:id", newsHandler.AdminDelete)

	adminAPI.GET("/coords", coordHandler.AdminList)
	adminAPI.GET("/coords/:id", coordHandler.AdminGet)
	adminAPI.POST("/coords", coordHandler.AdminCreate)
	adminAPI.PUT("/coords/:id", coordHandler.AdminUpdate)
	adminAPI.DELETE("/coords/:id", coordHandler.AdminDelete)

	adminAPI.GET("/issues", issueHandler.AdminList)
	adminAPI.GET("/issues/:id", issueHandler.AdminGet)
	adminAPI.POST("/issues", issueHandler.AdminCreate)
	adminAPI.PUT("/issues/:id", issueHandler.AdminUpdate)
	adminAPI.DELETE("/issues/:id", issueHandler.AdminDelete)

	adminAPI.GET("/proposals", proposalHandler.AdminList)
	adminAPI.GET("/proposals/:id", proposalHandler.AdminGet)
	adminAPI.POST("/proposals/:id/approve", proposalHandler.AdminApprove)
	adminAPI.POST("/proposals/:id/reject", proposalHandler.AdminReject)
	adminAPI.DELETE("/proposals/:id", proposalHandler.AdminDelete)
}

// rateLimiter builds a per-IP fixed-window limiter backed by in-process
// counters. Counters reset on restart and do not coordinate across
// instances.
func rateLimiter(r rate.Limit, burst int, expires time.Duration) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      r,
			Burst:     burst,
			ExpiresIn: expires,
		}),
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, apperrors.ErrorResponse{
				Error: "too many requests", Code: "RATE_LIMITED",
			})
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

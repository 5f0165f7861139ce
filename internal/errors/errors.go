package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a login username does not exist.
	ErrUserNotFound = errors.New("Username not found")
	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("Invalid password")
	// ErrHashMisconfigured is returned when the stored hash is not valid bcrypt.
	ErrHashMisconfigured = errors.New("password hash misconfigured")
	// ErrDatabaseUnavailable is returned when the datastore cannot be reached.
	ErrDatabaseUnavailable = errors.New("database unavailable")
	// ErrNotFound is returned for a missing entity.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a payload fails shape checks.
	ErrValidation = errors.New("validation failed")
	// ErrCaptchaFailed is returned when Turnstile rejects the token.
	ErrCaptchaFailed = errors.New("captcha verification failed")
	// ErrUptimeNotConfigured is returned when no uptime API key is set.
	ErrUptimeNotConfigured = errors.New("uptime monitoring not configured")
	// ErrUpstream is returned when a third-party dependency misbehaves.
	ErrUpstream = errors.New("upstream service failure")
)

// ErrorResponse is the standardized error body sent to clients.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError is an error carrying an HTTP status and machine-readable code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to an ErrorResponse body.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The code strings drive
// user-facing messaging in the dashboard, so they are part of the contract.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, ErrUserNotFound.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidPassword):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidPassword.Error(), "INVALID_PASSWORD")
	case errors.Is(err, ErrHashMisconfigured):
		return NewHTTPError(http.StatusInternalServerError, ErrHashMisconfigured.Error(), "HASH_MISCONFIGURED")
	case errors.Is(err, ErrDatabaseUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, ErrDatabaseUnavailable.Error(), "DB_UNAVAILABLE")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, ErrNotFound.Error(), "NOT_FOUND")
	case errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_FAILED")
	case errors.Is(err, ErrCaptchaFailed):
		return NewHTTPError(http.StatusBadRequest, ErrCaptchaFailed.Error(), "CAPTCHA_FAILED")
	case errors.Is(err, ErrUptimeNotConfigured):
		return NewHTTPError(http.StatusNotImplemented, ErrUptimeNotConfigured.Error(), "UPTIME_NOT_CONFIGURED")
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusBadGateway, ErrUpstream.Error(), "UPSTREAM_FAILURE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

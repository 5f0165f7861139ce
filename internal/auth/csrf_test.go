package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCSRF(t *testing.T, method, cookie, header string) error {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/admin/api/devices", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: cookie})
	}
	if header != "" {
		req.Header.Set(CSRFHeaderName, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	return RequireCSRF(next)(c)
}

func TestRequireCSRF(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		cookie  string
		header  string
		allowed bool
	}{
		{"get passes without token", http.MethodGet, "", "", true},
		{"head passes without token", http.MethodHead, "", "", true},
		{"post with matching pair passes", http.MethodPost, "tok-1", "tok-1", true},
		{"post without cookie rejected", http.MethodPost, "", "tok-1", false},
		{"post without header rejected", http.MethodPost, "tok-1", "", false},
		{"post with mismatch rejected", http.MethodPost, "tok-1", "tok-2", false},
		{"delete with mismatch rejected", http.MethodDelete, "tok-1", "tok-2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runCSRF(t, tt.method, tt.cookie, tt.header)
			if tt.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			httpErr, ok := err.(*echo.HTTPError)
			require.True(t, ok)
			assert.Equal(t, http.StatusForbidden, httpErr.Code)
		})
	}
}

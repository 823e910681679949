package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func runSecurityHeaders(t *testing.T, strictTransport bool) http.Header {
	t.Helper()
	e := echo.New()

	nextCalled := false
	handler := SecurityHeaders(strictTransport)(func(c echo.Context) error {
		nextCalled = true
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets/fetch-budgets", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.True(t, nextCalled, "Next handler should be called")
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec.Header()
}

func TestSecurityHeaders(t *testing.T) {
	headers := runSecurityHeaders(t, true)

	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", headers.Get("Referrer-Policy"))
	assert.Equal(t, "geolocation=(), microphone=(), camera=()", headers.Get("Permissions-Policy"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "no-store, private", headers.Get("Cache-Control"))
	assert.Equal(t, "no-cache", headers.Get("Pragma"))
}

func TestSecurityHeaders_NoHSTSWithoutTLS(t *testing.T) {
	headers := runSecurityHeaders(t, false)

	assert.Empty(t, headers.Get("Strict-Transport-Security"))
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
}

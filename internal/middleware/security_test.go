package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithSecurityHeaders(t *testing.T, strictTransport bool) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := SecurityHeaders(strictTransport)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/transactions", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	rec := serveWithSecurityHeaders(t, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	headers := rec.Header()
	assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'none'; frame-ancestors 'none'", headers.Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
	assert.Equal(t, "no-store", headers.Get("Cache-Control"))
	assert.Empty(t, headers.Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_StrictTransport(t *testing.T) {
	rec := serveWithSecurityHeaders(t, true)

	assert.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))
}

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spendlens/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(10, 10)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RejectsBeyondBurst(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(1, 2)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	limited := 0
	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "192.168.1.100:12345"
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		assert.NoError(t, handler(c))
		if rec.Code == http.StatusTooManyRequests {
			limited++

			var response errors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, "SYSTEM_005", response.Error.Code)
		}
	}

	assert.Greater(t, limited, 0, "burst of 2 cannot absorb 10 instant requests")
}

func TestRateLimiter_SeparateLimitsPerIP(t *testing.T) {
	e := echo.New()
	handler := RateLimiter(1, 1)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	// Exhaust the first address
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	rec := httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.1")
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different address still has its own budget
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	rec = httptest.NewRecorder()
	assert.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetIP_HeaderPrecedence(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.5")
	req.Header.Set("X-Real-IP", "10.0.0.9")
	c := e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "203.0.113.5", getIP(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "10.0.0.9", getIP(c))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.7:9999"
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Equal(t, "192.168.1.7", getIP(c))
}

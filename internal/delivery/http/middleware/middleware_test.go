package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/geocoder-api/internal/pkg/utils"
)

func TestLogger_RequestID(t *testing.T) {
	app := fiber.New()
	app.Use(Logger(zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(RequestID(c))
	})

	t.Run("generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
	})
}

func TestRecovery(t *testing.T) {
	app := fiber.New()
	app.Use(Recovery(zap.NewNop()))
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestIPRateLimiter(t *testing.T) {
	app := fiber.New()
	app.Use(NewIPRateLimiter(0.001, 2, zap.NewNop()).Handler())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "RATE_LIMITED", body.Code)
}

func countLimiters(l *IPRateLimiter) int {
	n := 0
	l.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func TestIPRateLimiter_EvictsIdleClients(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := start
	l := NewIPRateLimiter(10, 10, zap.NewNop())
	l.now = func() time.Time { return clock }
	l.lastSweep.Store(start.UnixNano())

	l.limiter("10.0.0.1", start)
	l.limiter("10.0.0.2", start)
	require.Equal(t, 2, countLimiters(l))

	// 10.0.0.2 stays active, 10.0.0.1 goes idle
	l.limiter("10.0.0.2", start.Add(limiterIdleTTL))

	t.Run("no sweep before the interval", func(t *testing.T) {
		l.maybeSweep(start.Add(sweepInterval / 2))
		assert.Equal(t, 2, countLimiters(l))
	})

	t.Run("idle entries are dropped", func(t *testing.T) {
		l.maybeSweep(start.Add(limiterIdleTTL + sweepInterval))
		assert.Equal(t, 1, countLimiters(l))
		_, ok := l.limiters.Load("10.0.0.2")
		assert.True(t, ok)
	})

	t.Run("sweep runs from the handler", func(t *testing.T) {
		app := fiber.New()
		app.Use(l.Handler())
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

		clock = start.Add(3 * limiterIdleTTL)
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		// only the client of this request is left
		assert.Equal(t, 1, countLimiters(l))
		_, ok := l.limiters.Load("10.0.0.2")
		assert.False(t, ok)
	})
}

func TestCORS_Preflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS())
	app.Get("/api", func(c *fiber.Ctx) error { return nil })

	req := httptest.NewRequest("OPTIONS", "/api", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

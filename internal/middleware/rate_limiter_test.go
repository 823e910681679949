package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func limitedHandler(limiter *IPRateLimiter) echo.HandlerFunc {
	return limiter.Middleware()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}

func serve(e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(NewIPRateLimiter(2, 4))

	for i := 0; i < 4; i++ {
		rec := serve(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DefaultsForNonPositiveConfig(t *testing.T) {
	limiter := NewIPRateLimiter(0, -1)

	assert.Equal(t, defaultBurstSize, limiter.burst)
	assert.Equal(t, float64(defaultRequestsPerSecond), float64(limiter.rps))
}

func TestRateLimiter_DifferentIPsAreIndependent(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(NewIPRateLimiter(1, 2))

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 2; i++ {
			rec := serve(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(5, 10)
	limiter.visitors["old_ip"] = &visitor{lastSeen: time.Now().Add(-5 * time.Minute)}
	limiter.visitors["new_ip"] = &visitor{lastSeen: time.Now()}

	removed := limiter.evict(time.Now())

	assert.Equal(t, 1, removed)
	_, oldExists := limiter.visitors["old_ip"]
	_, newExists := limiter.visitors["new_ip"]
	assert.False(t, oldExists)
	assert.True(t, newExists)
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := limitedHandler(NewIPRateLimiter(5, 10))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	rateLimitCount := 0

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := serve(e, handler, "192.168.1.100:12345")

			mu.Lock()
			defer mu.Unlock()
			switch rec.Code {
			case http.StatusOK:
				successCount++
			case http.StatusTooManyRequests:
				rateLimitCount++
			}
		}()
	}

	wg.Wait()

	assert.Greater(t, successCount, 0)
	assert.Greater(t, rateLimitCount, 0)
	assert.Equal(t, 20, successCount+rateLimitCount)
}

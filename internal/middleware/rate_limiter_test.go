package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func rateLimitedHandler(rl *RateLimiter) echo.HandlerFunc {
	return rl.Middleware()(func(c echo.Context) error {
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

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(2, 4))

	for i := 0; i < 4; i++ {
		rec := serve(e, handler, "192.168.1.2:12345")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := serve(e, handler, "192.168.1.2:12345")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(5, 5))

	for _, ip := range []string{"192.168.1.1:1234", "192.168.1.2:1234", "192.168.1.3:1234"} {
		for i := 0; i < 5; i++ {
			rec := serve(e, handler, ip)
			assert.Equal(t, http.StatusOK, rec.Code, "request %d for %s", i, ip)
		}
	}
}

func TestRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	e := echo.New()
	e.IPExtractor = ClientIPExtractor(false)
	handler := rateLimitedHandler(NewRateLimiter(1, 2))

	for i, spoofed := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		req.Header.Set(echo.HeaderXForwardedFor, spoofed)
		req.Header.Set(echo.HeaderXRealIP, spoofed)
		rec := httptest.NewRecorder()
		_ = handler(e.NewContext(req, rec))

		if i < 2 {
			assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
		} else {
			assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		}
	}
}

func TestClientIPExtractor(t *testing.T) {
	tests := []struct {
		name       string
		trustProxy bool
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "direct ignores X-Forwarded-For",
			headers:    map[string]string{echo.HeaderXForwardedFor: "192.168.1.1"},
			remoteAddr: "203.0.113.9:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "direct ignores X-Real-IP",
			headers:    map[string]string{echo.HeaderXRealIP: "192.168.1.2"},
			remoteAddr: "203.0.113.9:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "trusted proxy forwards client address",
			trustProxy: true,
			headers:    map[string]string{echo.HeaderXForwardedFor: "203.0.113.7"},
			remoteAddr: "10.0.0.5:12345",
			expected:   "203.0.113.7",
		},
		{
			name:       "untrusted peer cannot forward",
			trustProxy: true,
			headers:    map[string]string{echo.HeaderXForwardedFor: "10.0.0.1"},
			remoteAddr: "203.0.113.9:12345",
			expected:   "203.0.113.9",
		},
		{
			name:       "no headers uses remote address",
			trustProxy: true,
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.IPExtractor = ClientIPExtractor(tt.trustProxy)
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.expected, e.NewContext(req, httptest.NewRecorder()).RealIP())
		})
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	rl.visitors["old_ip"] = &visitor{lastSeen: time.Now().Add(-5 * time.Minute)}
	rl.visitors["new_ip"] = &visitor{lastSeen: time.Now()}

	rl.cleanup(time.Now())

	_, oldExists := rl.visitors["old_ip"]
	_, newExists := rl.visitors["new_ip"]
	assert.False(t, oldExists)
	assert.True(t, newExists)
}

func TestRateLimiter_RunCleanupStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		NewRateLimiter(1, 1).RunCleanup(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	handler := rateLimitedHandler(NewRateLimiter(5, 10))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount, rateLimitCount := 0, 0

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

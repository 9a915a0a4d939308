// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedRouter(t *testing.T, maxAttempts int64, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiterWithConfig(client, maxAttempts, window)

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return engine, mr
}

func doLogin(engine *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		if code := doLogin(engine, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
		}
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		doLogin(engine, "10.0.0.1")
	}
	if code := doLogin(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429 after the limit, got %d", code)
	}
}

func TestRateLimiter_LimitsPerClient(t *testing.T) {
	engine, _ := newRateLimitedRouter(t, 2, time.Minute)

	doLogin(engine, "10.0.0.1")
	doLogin(engine, "10.0.0.1")
	if code := doLogin(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected first client to be limited, got %d", code)
	}

	if code := doLogin(engine, "10.0.0.2"); code != http.StatusOK {
		t.Errorf("expected second client to be unaffected, got %d", code)
	}
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	engine, mr := newRateLimitedRouter(t, 1, time.Minute)

	doLogin(engine, "10.0.0.1")
	if code := doLogin(engine, "10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected limit to trip, got %d", code)
	}

	mr.FastForward(2 * time.Minute)

	if code := doLogin(engine, "10.0.0.1"); code != http.StatusOK {
		t.Errorf("expected limit to reset after the window, got %d", code)
	}
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiterWithConfig(client, 1, time.Minute)
	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	mr.Close()

	for i := 0; i < 3; i++ {
		if code := doLogin(engine, "10.0.0.1"); code != http.StatusOK {
			t.Fatalf("attempt %d: expected fail-open 200, got %d", i+1, code)
		}
	}
}

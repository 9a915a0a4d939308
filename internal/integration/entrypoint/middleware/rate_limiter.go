// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/debt-manager/backend/internal/domain/error"
	"github.com/debt-manager/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// RateLimiter provides IP-based rate limiting backed by Redis, so the
// limit holds across multiple API instances. When Redis is unreachable
// the limiter fails open: login availability wins over the limit.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int64
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    defaultMaxAttempts,
		windowDuration: defaultWindowDuration,
	}
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int64, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c, clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow counts the attempt and reports whether it fits in the window.
func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	ctx := c.Request.Context()
	redisKey := rateLimitKeyPrefix + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Failed to set rate limit window", "error", err)
		}
	}

	return count <= rl.maxAttempts
}

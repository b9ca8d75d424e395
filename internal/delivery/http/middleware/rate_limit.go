package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/pkg/logger"
	"prolinked-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig describes one fixed-window bucket.
type RateLimitConfig struct {
	Limit     int
	Window    time.Duration
	KeyFunc   func(*gin.Context) string
	KeyPrefix string
	// FailClosed rejects requests with 503 when Redis is configured but errors.
	FailClosed bool
}

// GlobalRateLimitConfig limits every route per client IP and fails open.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
	}
}

// LoginRateLimitConfig guards credential checks and fails closed when Redis errors.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// windowCounter records one hit for key and reports the count in the current
// window together with the moment the window closes.
type windowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// INCR with the expiry set on the first hit of a window.
// Returns {count, ttl_seconds}.
const fixedWindowScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('TTL', KEYS[1])}
`

type redisCounter struct {
	client *goredis.Client
}

func (r redisCounter) Hit(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	res, err := r.client.Eval(ctx, fixedWindowScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}
	pair, ok := res.([]interface{})
	if !ok || len(pair) != 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected reply %T", res)
	}
	count, _ := pair[0].(int64)
	ttl, _ := pair[1].(int64)
	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// memoryCounter is the per-process fallback. Expired windows are swept on
// access at most once per sweepEvery.
type memoryCounter struct {
	mu        sync.Mutex
	windows   map[string]*memoryWindow
	lastSweep time.Time
	now       func() time.Time
}

type memoryWindow struct {
	count   int
	resetAt time.Time
}

const sweepEvery = 5 * time.Minute

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{windows: make(map[string]*memoryWindow), now: time.Now}
}

func (m *memoryCounter) Hit(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= sweepEvery {
		for k, w := range m.windows {
			if now.After(w.resetAt) {
				delete(m.windows, k)
			}
		}
		m.lastSweep = now
	}

	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &memoryWindow{resetAt: now.Add(window)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt, nil
}

// RateLimitMiddleware counts in Redis when the shared client is up and in
// process memory otherwise. A non-positive Limit disables it.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	return rateLimit(config, func() windowCounter {
		if client := redis.Client(); client != nil {
			return redisCounter{client: client}
		}
		return nil
	})
}

func rateLimit(config RateLimitConfig, shared func() windowCounter) gin.HandlerFunc {
	if config.Limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	if config.KeyFunc == nil {
		config.KeyFunc = clientIP
	}
	local := newMemoryCounter()

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		var (
			count   int
			resetAt time.Time
			err     error
		)
		if counter := shared(); counter != nil {
			count, resetAt, err = counter.Hit(c.Request.Context(), key, config.Window)
			if err != nil {
				logRateLimitError(c, err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt, _ = local.Hit(c.Request.Context(), key, config.Window)
			}
		} else {
			count, resetAt, _ = local.Hit(c.Request.Context(), key, config.Window)
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logRateLimitTriggered(c, config)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func logRateLimitTriggered(c *gin.Context, config RateLimitConfig) {
	logger.Log.Warn("rate limit triggered",
		slog.String("request_id", RequestIDFrom(c)),
		slog.String("ip", c.ClientIP()),
		slog.String("path", c.FullPath()),
		slog.String("bucket", config.KeyPrefix),
		slog.Int("limit", config.Limit),
	)
}

func logRateLimitError(c *gin.Context, err error) {
	logger.Log.Error("rate limit backend failed",
		slog.String("request_id", RequestIDFrom(c)),
		slog.String("ip", c.ClientIP()),
		slog.Any("error", err),
	)
}

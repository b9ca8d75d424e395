package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("request_id", RequestIDFrom(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0),
			slog.String("client_ip", c.ClientIP()),
		}
		if actor := ActorFrom(c); actor.UserID > 0 {
			attrs = append(attrs, slog.Int64("user_id", actor.UserID))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Log.Error("request.complete", attrs...)
		case status >= http.StatusBadRequest:
			logger.Log.Warn("request.complete", attrs...)
		default:
			logger.Log.Info("request.complete", attrs...)
		}
	}
}

// Recovery turns a panic into a 500 envelope and logs the stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Log.Error("panic recovered",
					slog.String("request_id", RequestIDFrom(c)),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())),
				)
				response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// UploadQuota is satisfied by *security.UploadLimiter.
type UploadQuota interface {
	AllowUpload(ctx context.Context, ip string, userID int64) (bool, int, error)
}

// UploadLimit applies the per-IP and per-user upload quotas. Limiter errors
// are logged and the upload proceeds. A nil quota disables the check.
func UploadLimit(quota UploadQuota) gin.HandlerFunc {
	return func(c *gin.Context) {
		if quota == nil {
			c.Next()
			return
		}
		allowed, retryAfter, err := quota.AllowUpload(c.Request.Context(), c.ClientIP(), ActorFrom(c).UserID)
		if err != nil {
			logger.Log.Warn("upload limiter degraded",
				slog.String("request_id", RequestIDFrom(c)),
				slog.Any("error", err),
			)
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Error(c, http.StatusTooManyRequests, "Upload limit reached. Please try again later.", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

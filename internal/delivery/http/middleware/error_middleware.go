package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/pkg/apperror"
	"prolinked-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		// Causes stay server side.
		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				slog.String("request_id", RequestIDFrom(c)),
				slog.String("path", c.FullPath()),
				slog.Int("status", appErr.Code),
				slog.Any("error", appErr.Unwrap()),
			)
		}
		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}

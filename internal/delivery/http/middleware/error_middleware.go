package middleware

import (
	"contact-book-backend/internal/delivery/http/response"
	"contact-book-backend/pkg/apperror"
	"contact-book-backend/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("unhandled error",
				"error", err,
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
			response.Error(c, http.StatusInternalServerError, "Server error", nil)
			return
		}

		status := appErr.Status()
		if status >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				"kind", appErr.Kind.String(),
				"error", appErr.Detail(),
				"path", c.FullPath(),
				"request_id", c.GetString("RequestID"),
			)
		}

		var detail interface{}
		if d := appErr.Detail(); d != "" {
			detail = d
		}
		response.Error(c, status, appErr.Message, detail)
	}
}

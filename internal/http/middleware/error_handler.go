package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
)

// ErrorHandler обрабатывает ошибки централизованно.
// Внутренние ошибки маскируются, AppError отдаются с их кодом и статусом.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		code := apperror.ErrCodeInternal
		message := "внутренняя ошибка сервера"

		if appErr, ok := apperror.As(err); ok {
			status = appErr.HTTPStatus
			code = appErr.Code
			if status < http.StatusInternalServerError || code == apperror.ErrCodeFetchFailure || code == apperror.ErrCodeNotReady || code == apperror.ErrCodeUnavailable {
				message = appErr.Message
			}
		}

		entry := logger.L().WithFields(logrus.Fields{
			"error":      err.Error(),
			"status":     status,
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(ContextRequestIDKey),
		})
		if status >= http.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Warn("Request rejected")
		}

		c.JSON(status, gin.H{"error": message, "code": code})
	}
}

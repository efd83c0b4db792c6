package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
)

// ContextSubjectKey хранит subject токена в gin.Context.
const ContextSubjectKey = "subject"

// Authorizer проверяет access токен и возвращает subject.
type Authorizer interface {
	Authorize(token string) (string, error)
}

// AuthMiddleware проверяет JWT access токен администратора.
func AuthMiddleware(auth Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			_ = c.Error(apperror.ErrUnauthorized)
			c.Abort()
			return
		}

		subject, err := auth.Authorize(strings.TrimSpace(raw))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ContextSubjectKey, subject)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
)

// UUIDValidator проверяет параметр пути и кладёт разобранный UUID в контекст под тем же именем.
// Использование: admin.PUT("/messages/:id/read", UUIDValidator("id"), h.MarkRead)
func UUIDValidator(paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(paramName)
		if raw == "" {
			_ = c.Error(apperror.New(apperror.ErrCodeBadRequest, "параметр "+paramName+" обязателен"))
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			_ = c.Error(apperror.New(apperror.ErrCodeBadRequest, "параметр "+paramName+" должен быть валидным UUID"))
			c.Abort()
			return
		}

		c.Set(paramName, id)
		c.Next()
	}
}

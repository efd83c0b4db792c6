package provider

import (
	"github.com/gin-gonic/gin"
)

const contextKey = "portfolio.provider"

// ErrOutsideScope передаётся в panic при обращении к провайдеру вне Middleware.
const ErrOutsideScope = "provider: обращение к портфолио вне области Middleware"

// Middleware делает провайдер доступным обработчикам запроса.
func Middleware(p *Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextKey, p)
		c.Next()
	}
}

// MustFrom возвращает провайдер из запроса и паникует, если Middleware не подключён.
func MustFrom(c *gin.Context) *Provider {
	v, ok := c.Get(contextKey)
	if !ok {
		panic(ErrOutsideScope)
	}
	p, ok := v.(*Provider)
	if !ok || p == nil {
		panic(ErrOutsideScope)
	}
	return p
}

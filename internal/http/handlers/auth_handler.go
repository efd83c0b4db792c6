package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-site/internal/service"
)

// AuthHandler обслуживает вход владельца сайта.
type AuthHandler struct {
	auth *service.AdminAuthService
}

// NewAuthHandler создаёт хэндлер.
func NewAuthHandler(auth *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login обрабатывает POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, apperror.Wrap(err, apperror.ErrCodeBadRequest, "пароль обязателен"))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-site/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-site/internal/service"
	"github.com/ignatzorin/portfolio-site/internal/validation"
)

// ContactHandler принимает сообщения формы и отдаёт их администратору.
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler создаёт хэндлер. nil сервис означает, что БД не настроена.
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit обрабатывает POST /api/contact (JSON или форма).
func (h *ContactHandler) Submit(c *gin.Context) {
	if h.contacts == nil {
		common.Fail(c, apperror.ErrContactDisabled)
		return
	}

	var req validation.ContactInput
	if err := c.ShouldBind(&req); err != nil {
		common.Fail(c, apperror.Wrap(err, apperror.ErrCodeBadRequest, "некорректный запрос"))
		return
	}

	msg, err := h.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": msg.ID, "created_at": msg.CreatedAt})
}

// List обрабатывает GET /api/admin/messages?limit=&offset=&unread=.
func (h *ContactHandler) List(c *gin.Context) {
	if h.contacts == nil {
		common.Fail(c, apperror.ErrContactDisabled)
		return
	}

	limit, offset := common.GetPagination(c)
	page, err := h.contacts.List(c.Request.Context(), limit, offset, common.ParseBoolQuery(c, "unread"))
	if err != nil {
		common.Fail(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// MarkRead обрабатывает PUT /api/admin/messages/:id/read.
func (h *ContactHandler) MarkRead(c *gin.Context) {
	if h.contacts == nil {
		common.Fail(c, apperror.ErrContactDisabled)
		return
	}

	id, ok := c.MustGet("id").(uuid.UUID)
	if !ok {
		common.Fail(c, apperror.New(apperror.ErrCodeBadRequest, "параметр id должен быть валидным UUID"))
		return
	}

	if err := h.contacts.MarkRead(c.Request.Context(), id); err != nil {
		common.Fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

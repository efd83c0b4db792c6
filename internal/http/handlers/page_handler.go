package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/view"
)

// PageHandler рендерит HTML-страницу.
type PageHandler struct {
	policy view.ProjectPolicy
	images view.ImageResolver
	now    func() time.Time
}

// NewPageHandler создаёт хэндлер. images может быть nil.
func NewPageHandler(policy view.ProjectPolicy, images view.ImageResolver) *PageHandler {
	return &PageHandler{policy: policy, images: images, now: time.Now}
}

// Index обрабатывает GET /. Ошибка загрузки даёт страницу-заглушку, а не 5xx.
func (h *PageHandler) Index(c *gin.Context) {
	page := view.BuildPage(provider.MustFrom(c).State(), h.policy, h.images, h.now())
	if page.Status != view.StatusReady {
		c.Header("Cache-Control", "no-store")
	}
	c.HTML(http.StatusOK, "index.tmpl", page)
}

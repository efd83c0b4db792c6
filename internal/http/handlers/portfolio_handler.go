package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/view"
)

// PortfolioHandler отдаёт контент портфолио в JSON.
type PortfolioHandler struct {
	policy view.ProjectPolicy
}

// NewPortfolioHandler создаёт хэндлер.
func NewPortfolioHandler(policy view.ProjectPolicy) *PortfolioHandler {
	return &PortfolioHandler{policy: policy}
}

// Snapshot обрабатывает GET /api/portfolio: всегда 200 с тройкой {data, loading, error}.
func (h *PortfolioHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, provider.MustFrom(c).Snapshot())
}

// Featured обрабатывает GET /api/portfolio/projects/featured.
func (h *PortfolioHandler) Featured(c *gin.Context) {
	doc, err := readyDocument(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": view.FeaturedProjects(doc.Projects, h.policy)})
}

// Projects обрабатывает GET /api/portfolio/projects.
func (h *PortfolioHandler) Projects(c *gin.Context) {
	doc, err := readyDocument(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": view.OtherProjects(doc.Projects, h.policy)})
}

// Experiences обрабатывает GET /api/portfolio/experiences.
func (h *PortfolioHandler) Experiences(c *gin.Context) {
	doc, err := readyDocument(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": view.SortExperiences(doc.Experiences)})
}

// Skills обрабатывает GET /api/portfolio/skills.
func (h *PortfolioHandler) Skills(c *gin.Context) {
	doc, err := readyDocument(c)
	if err != nil {
		common.Fail(c, err)
		return
	}
	categories := doc.Categories
	if categories == nil {
		categories = []models.SkillCategory{}
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/config"
	"github.com/ignatzorin/portfolio-site/internal/http/handlers"
	"github.com/ignatzorin/portfolio-site/internal/http/middleware"
	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/metrics"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/service"
	"github.com/ignatzorin/portfolio-site/web"
)

// Handlers собирает все хэндлеры приложения.
type Handlers struct {
	Page      *handlers.PageHandler
	Portfolio *handlers.PortfolioHandler
	CV        *handlers.CVHandler
	Contact   *handlers.ContactHandler
	Auth      *handlers.AuthHandler
	WS        *handlers.WSHandler
	Health    *handlers.HealthHandler
}

// SetupRouter регистрирует маршруты. Все запросы видят один и тот же провайдер.
func SetupRouter(
	cfg *config.Config,
	p *provider.Provider,
	h Handlers,
	adminAuth *service.AdminAuthService,
	m *metrics.Metrics,
) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.LoggerWithWriter(logger.L().Writer()), gin.Recovery())
	r.Use(middleware.RequestID())
	if m != nil {
		r.Use(m.Middleware())
	}
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(provider.Middleware(p))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", h.Page.Index)
	r.GET("/cv", h.CV.Download)
	r.GET("/health", h.Health.Health)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	api := r.Group("/api")

	portfolio := api.Group("/portfolio")
	{
		portfolio.GET("", h.Portfolio.Snapshot)
		portfolio.GET("/projects/featured", h.Portfolio.Featured)
		portfolio.GET("/projects", h.Portfolio.Projects)
		portfolio.GET("/experiences", h.Portfolio.Experiences)
		portfolio.GET("/skills", h.Portfolio.Skills)
	}

	api.GET("/ws", h.WS.Handle)

	limit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	api.POST("/contact", limit, h.Contact.Submit)
	api.POST("/admin/login", limit, h.Auth.Login)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(adminAuth))
	{
		admin.GET("/messages", h.Contact.List)
		admin.PUT("/messages/:id/read", middleware.UUIDValidator("id"), h.Contact.MarkRead)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "маршрут не найден"})
	})

	return r, nil
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/config"
	"github.com/ignatzorin/portfolio-site/internal/content"
	"github.com/ignatzorin/portfolio-site/internal/db"
	"github.com/ignatzorin/portfolio-site/internal/goroutine"
	httpHandlers "github.com/ignatzorin/portfolio-site/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-site/internal/http/router"
	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/metrics"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/internal/repository"
	"github.com/ignatzorin/portfolio-site/internal/service"
	"github.com/ignatzorin/portfolio-site/internal/view"
	"github.com/ignatzorin/portfolio-site/internal/ws"
	"github.com/ignatzorin/portfolio-site/migrations"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	logLevel := "info"
	if cfg.IsDevelopment() {
		logLevel = "debug"
	}
	logger.Init(logLevel, cfg.IsDevelopment())
	mainLog := logger.Component("main")

	m := metrics.New()

	// Контент: один запрос на весь жизненный цикл процесса.
	store, images, err := newContentStore(cfg)
	if err != nil {
		mainLog.WithError(err).Fatal("Не удалось создать хранилище контента")
	}
	portfolio := provider.New(store,
		provider.WithTimeout(cfg.ContentTimeout),
		provider.WithObserver(m.ObserveFetch),
	)

	hub := ws.NewHub()
	goroutine.SafeGoWithContext(ctx, hub.Run)
	portfolio.OnResolve(func(provider.State) {
		if err := hub.Broadcast(ws.EventPortfolioState, portfolio.Snapshot()); err != nil {
			mainLog.WithError(err).Error("Не удалось разослать состояние")
		}
	})
	portfolio.Init(ctx)

	// База нужна только форме обратной связи.
	var (
		dbConn   *sqlx.DB
		contacts *service.ContactService
	)
	if cfg.DatabaseURL != "" {
		dbConn, err = db.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			mainLog.WithError(err).Fatal("Ошибка подключения к базе")
		}
		defer safeClose(dbConn)

		if err := db.RunMigrations(ctx, dbConn, migrations.FS); err != nil {
			mainLog.WithError(err).Fatal("Ошибка миграций")
		}
		contacts = service.NewContactService(repository.NewContactRepository(dbConn), m)
	} else {
		mainLog.Warn("DATABASE_URL не задан: форма обратной связи отключена")
	}

	tokens := service.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	adminAuth := service.NewAdminAuthService(cfg.AdminPasswordHash, tokens)

	policy := view.ProjectPolicy{
		FeaturedLimit:             cfg.FeaturedProjectsLimit,
		ExcludeFeaturedFromOthers: cfg.DedupFeaturedProjects,
	}

	engine, err := httpRouter.SetupRouter(cfg, portfolio, httpRouter.Handlers{
		Page:      httpHandlers.NewPageHandler(policy, images),
		Portfolio: httpHandlers.NewPortfolioHandler(policy),
		CV:        httpHandlers.NewCVHandler(nil, cfg.CVMaxSizeMB),
		Contact:   httpHandlers.NewContactHandler(contacts),
		Auth:      httpHandlers.NewAuthHandler(adminAuth),
		WS:        httpHandlers.NewWSHandler(hub, cfg.AllowedOrigins),
		Health:    httpHandlers.NewHealthHandler(dbConn),
	}, adminAuth, m)
	if err != nil {
		mainLog.WithError(err).Fatal("Не удалось собрать роутер")
	}

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			mainLog.WithError(err).Error("Ошибка остановки http сервера")
		}
	}()

	mainLog.WithFields(logrus.Fields{
		"port":  cfg.HTTPPort,
		"env":   cfg.Env,
		"admin": adminAuth.Enabled(),
	}).Info("HTTP сервер запущен")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		mainLog.WithError(err).Fatal("Сервер завершился с ошибкой")
	}
	mainLog.Info("Сервер остановлен")
}

// newContentStore выбирает источник контента: файл для разработки или Sanity.
func newContentStore(cfg *config.Config) (content.Store, content.ImageURLBuilder, error) {
	images := content.NewImageURLBuilder(cfg.SanityProjectID, cfg.SanityDataset)
	if cfg.ContentFixturePath != "" {
		logger.Component("main").WithField("path", cfg.ContentFixturePath).Info("Контент читается из файла")
		return content.NewStaticStore(cfg.ContentFixturePath), images, nil
	}

	store, err := content.NewSanityStore(content.SanityConfig{
		ProjectID:  cfg.SanityProjectID,
		Dataset:    cfg.SanityDataset,
		APIVersion: cfg.SanityAPIVersion,
		UseCDN:     cfg.SanityUseCDN,
		Token:      cfg.SanityToken,
		Timeout:    cfg.ContentTimeout,
	})
	if err != nil {
		return nil, images, err
	}
	return store, images, nil
}

// safeClose закрывает соединение с базой.
func safeClose(conn *sqlx.DB) {
	if err := conn.Close(); err != nil {
		logger.Component("main").WithError(err).Error("Ошибка закрытия базы")
	}
}

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config хранит все параметры запуска приложения.
type Config struct {
	Env      string
	HTTPPort string

	SanityProjectID    string
	SanityDataset      string
	SanityAPIVersion   string
	SanityUseCDN       bool
	SanityToken        string
	ContentTimeout     time.Duration
	ContentFixturePath string

	FeaturedProjectsLimit int
	DedupFeaturedProjects bool

	DatabaseURL string

	AllowedOrigins  []string
	RateLimitLimit  int64
	RateLimitPeriod time.Duration

	AdminPasswordHash string
	JWTSecret         string
	AccessTokenTTL    time.Duration

	CVMaxSizeMB int64
}

// Load читает переменные окружения и возвращает готовую конфигурацию.
func Load() (*Config, error) {
	// Загружаем .env только если он существует, иначе используем системные переменные.
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: .env не найден, используем переменные окружения: %v", err)
	}

	return FromEnv()
}

// FromEnv собирает конфигурацию только из переменных окружения.
func FromEnv() (*Config, error) {
	env := getEnv("APP_ENV", "development")

	cfg := &Config{
		Env:                env,
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		SanityProjectID:    getEnv("SANITY_PROJECT_ID", ""),
		SanityDataset:      getEnv("SANITY_DATASET", "production"),
		SanityAPIVersion:   getEnv("SANITY_API_VERSION", "2025-01-01"),
		SanityToken:        getEnv("SANITY_TOKEN", ""),
		ContentFixturePath: getEnv("CONTENT_FIXTURE_PATH", ""),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
	}

	var err error
	if cfg.SanityUseCDN, err = parseBool("SANITY_USE_CDN", getEnv("SANITY_USE_CDN", "true")); err != nil {
		return nil, err
	}
	if cfg.DedupFeaturedProjects, err = parseBool("DEDUP_FEATURED_PROJECTS", getEnv("DEDUP_FEATURED_PROJECTS", "true")); err != nil {
		return nil, err
	}
	if cfg.ContentTimeout, err = parseDuration("CONTENT_FETCH_TIMEOUT", getEnv("CONTENT_FETCH_TIMEOUT", "15s")); err != nil {
		return nil, err
	}
	if cfg.RateLimitPeriod, err = parseDuration("RATE_LIMIT_PERIOD", getEnv("RATE_LIMIT_PERIOD", "1m")); err != nil {
		return nil, err
	}
	if cfg.AccessTokenTTL, err = parseDuration("ACCESS_TOKEN_TTL", getEnv("ACCESS_TOKEN_TTL", "12h")); err != nil {
		return nil, err
	}
	if cfg.RateLimitLimit, err = parseInt64("RATE_LIMIT_LIMIT", getEnv("RATE_LIMIT_LIMIT", "10")); err != nil {
		return nil, err
	}
	if cfg.CVMaxSizeMB, err = parseInt64("CV_MAX_SIZE_MB", getEnv("CV_MAX_SIZE_MB", "20")); err != nil {
		return nil, err
	}
	featured, err := parseInt64("FEATURED_PROJECTS_LIMIT", getEnv("FEATURED_PROJECTS_LIMIT", "2"))
	if err != nil {
		return nil, err
	}
	if featured < 0 {
		return nil, fmt.Errorf("config: FEATURED_PROJECTS_LIMIT не может быть отрицательным")
	}
	cfg.FeaturedProjectsLimit = int(featured)

	if cfg.SanityProjectID == "" && cfg.ContentFixturePath == "" {
		return nil, fmt.Errorf("config: нужен SANITY_PROJECT_ID или CONTENT_FIXTURE_PATH")
	}

	// Валидация JWT секрета
	jwtSecret := getEnv("JWT_SECRET", "")
	if env == "production" {
		if cfg.AdminPasswordHash != "" && len(jwtSecret) < 32 {
			return nil, fmt.Errorf("config: JWT_SECRET обязателен и должен быть не менее 32 символов в production")
		}
	} else if jwtSecret == "" {
		jwtSecret = "portfolio-development-secret-change-in-production"
		log.Printf("config: WARNING - используется дефолтный JWT_SECRET, измените в production!")
	}
	cfg.JWTSecret = jwtSecret

	// CORS allowed origins
	originsStr := getEnv("CORS_ALLOWED_ORIGINS", "")
	if originsStr == "" {
		if env == "production" {
			return nil, fmt.Errorf("config: CORS_ALLOWED_ORIGINS обязателен в production")
		}
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	} else {
		for _, origin := range strings.Split(originsStr, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	return cfg, nil
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// getEnv возвращает значение переменной окружения или дефолт.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func parseDuration(key, v string) (time.Duration, error) {
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	return dur, nil
}

func parseInt64(key, v string) (int64, error) {
	num, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	return num, nil
}

func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: не удалось распарсить %s=%q: %w", key, v, err)
	}
	return b, nil
}

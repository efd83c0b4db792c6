package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

// maxResponseBytes ограничивает размер ответа CMS.
const maxResponseBytes = 8 << 20

// SanityConfig описывает подключение к Sanity.
type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Timeout    time.Duration
	// BaseURL переопределяет хост API (для тестов и прокси).
	BaseURL string
}

// SanityStore выполняет GROQ запрос к Sanity HTTP API.
type SanityStore struct {
	endpoint   string
	token      string
	query      string
	httpClient *http.Client
}

type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *queryError     `json:"error"`
}

type queryError struct {
	Description string `json:"description"`
	Type        string `json:"type"`
}

// NewSanityStore создаёт клиент. Ретраев и кэширования нет: один запрос на вызов Fetch.
func NewSanityStore(cfg SanityConfig) (*SanityStore, error) {
	if cfg.ProjectID == "" && cfg.BaseURL == "" {
		return nil, fmt.Errorf("content: projectID не задан")
	}
	if cfg.Dataset == "" {
		return nil, fmt.Errorf("content: dataset не задан")
	}

	apiVersion := strings.TrimPrefix(cfg.APIVersion, "v")
	if apiVersion == "" {
		apiVersion = "2025-01-01"
	}

	base := cfg.BaseURL
	if base == "" {
		host := "api.sanity.io"
		// Запросы с токеном не идут через CDN.
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn.sanity.io"
		}
		base = fmt.Sprintf("https://%s.%s", cfg.ProjectID, host)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &SanityStore{
		endpoint: fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"), apiVersion, url.PathEscape(cfg.Dataset)),
		token:    cfg.Token,
		query:    AggregateQuery,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Endpoint возвращает URL запроса без параметров.
func (s *SanityStore) Endpoint() string {
	return s.endpoint
}

// Fetch выполняет агрегированный запрос.
func (s *SanityStore) Fetch(ctx context.Context) (*models.Portfolio, error) {
	reqURL := s.endpoint + "?query=" + url.QueryEscape(s.query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fail("content: не удалось создать запрос", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "portfolio-site/1.0")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fail("content: запрос к CMS не выполнен", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fail("content: не удалось прочитать ответ", err)
	}
	if len(body) > maxResponseBytes {
		return nil, fail(fmt.Sprintf("content: ответ слишком большой (больше %d байт)", maxResponseBytes), nil)
	}

	return decodeResponse(resp.StatusCode, body)
}

func decodeResponse(status int, body []byte) (*models.Portfolio, error) {
	var envelope queryResponse
	decodeErr := json.Unmarshal(body, &envelope)

	if envelope.Error != nil {
		msg := envelope.Error.Description
		if msg == "" {
			msg = envelope.Error.Type
		}
		return nil, fail(fmt.Sprintf("content: ошибка запроса (%d)", status), errors.New(msg))
	}
	if status < 200 || status >= 300 {
		return nil, fail(fmt.Sprintf("content: CMS вернула статус %d", status), nil)
	}
	if decodeErr != nil {
		return nil, fail("content: некорректный ответ", decodeErr)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil, fail("content: пустой результат", nil)
	}

	var doc models.Portfolio
	if err := json.Unmarshal(envelope.Result, &doc); err != nil {
		return nil, fail("content: документ не соответствует схеме", err)
	}
	return &doc, nil
}

package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
)

// Типы файлов, которые отдаются как резюме напрямую.
var allowedCVTypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/msword": true,
	"image/png":          true,
	"image/jpeg":         true,
}

// CVHandler проксирует файл резюме из CMS.
type CVHandler struct {
	client   *http.Client
	maxBytes int64
}

// NewCVHandler создаёт хэндлер. maxSizeMB ограничивает размер файла.
func NewCVHandler(client *http.Client, maxSizeMB int64) *CVHandler {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &CVHandler{client: client, maxBytes: maxSizeMB << 20}
}

// Download обрабатывает GET /cv.
func (h *CVHandler) Download(c *gin.Context) {
	doc, err := readyDocument(c)
	if err != nil {
		common.Fail(c, err)
		return
	}

	url := doc.CVURL()
	if url == "" {
		common.Fail(c, apperror.ErrCVNotFound)
		return
	}

	body, err := h.fetch(c.Request.Context(), url)
	if err != nil {
		logger.Component("cv").WithFields(logrus.Fields{"url": url}).WithError(err).Warn("Не удалось получить резюме")
		common.Fail(c, err)
		return
	}

	// Файлы других форматов отдаёт само хранилище CMS.
	kind, err := filetype.Match(body)
	if err != nil || kind == filetype.Unknown || !allowedCVTypes[kind.MIME.Value] {
		c.Redirect(http.StatusFound, url)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s.%s"`, cvFileName(doc.AuthorName()), kind.Extension))
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, kind.MIME.Value, body)
}

func (h *CVHandler) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeFetchFailure, "некорректная ссылка на резюме")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeFetchFailure, "хранилище файлов недоступно")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.New(apperror.ErrCodeFetchFailure, fmt.Sprintf("хранилище файлов ответило %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBytes+1))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeFetchFailure, "не удалось прочитать резюме")
	}
	if int64(len(body)) > h.maxBytes {
		return nil, apperror.New(apperror.ErrCodeFetchFailure, "файл резюме слишком большой")
	}
	return body, nil
}

func cvFileName(author string) string {
	name := strings.Join(strings.Fields(strings.ToLower(author)), "-")
	name = strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r == '/' {
			return -1
		}
		return r
	}, name)
	if name == "" {
		return "cv"
	}
	return name + "-cv"
}

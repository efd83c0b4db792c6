package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-site/internal/content"
	"github.com/ignatzorin/portfolio-site/internal/http/middleware"
	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/provider"
	"github.com/ignatzorin/portfolio-site/web"
)

const fixturePath = "../../content/testdata/portfolio.json"

func init() {
	gin.SetMode(gin.TestMode)
}

type docStore struct {
	doc *models.Portfolio
	err error
}

func (s docStore) Fetch(context.Context) (*models.Portfolio, error) {
	return s.doc, s.err
}

// blockingStore не отвечает до отмены контекста.
type blockingStore struct{}

func (blockingStore) Fetch(ctx context.Context) (*models.Portfolio, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func resolved(t *testing.T, store content.Store) *provider.Provider {
	t.Helper()
	p := provider.New(store)
	p.Init(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := p.Wait(ctx)
	require.NoError(t, err)
	return p
}

func readyProvider(t *testing.T) *provider.Provider {
	return resolved(t, content.NewStaticStore(fixturePath))
}

func failedProvider(t *testing.T) *provider.Provider {
	return resolved(t, docStore{err: errors.New("network timeout")})
}

func loadingProvider(t *testing.T) *provider.Provider {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	p := provider.New(blockingStore{})
	p.Init(ctx)
	return p
}

func newTestEngine(t *testing.T, p *provider.Provider) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(middleware.ErrorHandler(), provider.Middleware(p))

	tmpl, err := web.Templates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)
	return r
}

func doRequest(r http.Handler, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

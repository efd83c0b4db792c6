package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-site/internal/provider"
)

func health(t *testing.T, p *provider.Provider) (int, HealthResponse) {
	r := newTestEngine(t, p)
	r.GET("/health", NewHealthHandler(nil).Health)

	w := doRequest(r, http.MethodGet, "/health", "", nil)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHealthHandler(t *testing.T) {
	code, resp := health(t, readyProvider(t))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "ready", resp.Checks["content"])
	assert.Equal(t, "disabled", resp.Checks["database"])

	code, resp = health(t, loadingProvider(t))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "degraded", resp.Status)

	code, resp = health(t, failedProvider(t))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "failed: network timeout", resp.Checks["content"])
}

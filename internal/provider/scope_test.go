package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMustFrom_InsideScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := New(newGatedStore(nil, nil))

	r := gin.New()
	r.GET("/x", Middleware(p), func(c *gin.Context) {
		assert.Same(t, p, MustFrom(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMustFrom_OutsideScopePanics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.PanicsWithValue(t, ErrOutsideScope, func() { MustFrom(c) })
}

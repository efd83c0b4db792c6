package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-site/internal/provider"
)

// readyDocument возвращает документ, если провайдер в состоянии Ready.
// Loading даёт NOT_READY (503), Failed даёт FETCH_FAILURE (502) с исходным сообщением.
func readyDocument(c *gin.Context) (*models.Portfolio, error) {
	switch st := provider.MustFrom(c).State().(type) {
	case provider.Ready:
		return st.Data, nil
	case provider.Failed:
		return nil, apperror.Wrap(st.Err, apperror.ErrCodeFetchFailure, st.Message())
	default:
		return nil, apperror.ErrNotReady
	}
}

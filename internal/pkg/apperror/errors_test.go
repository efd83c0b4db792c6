package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_StatusAndUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(cause, ErrCodeFetchFailure, "контент недоступен")

	assert.Equal(t, http.StatusBadGateway, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "FETCH_FAILURE")
	assert.Contains(t, err.Error(), "dial tcp: timeout")
}

func TestAs_ThroughWrappedChain(t *testing.T) {
	err := fmt.Errorf("handler: %w", ErrMessageNotFound)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
}

func TestCodeToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, New(ErrCodeNotReady, "").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, New(ErrCodeValidation, "").HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, New(ErrCodeUnauthorized, "").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, New(ErrCodeInternal, "").HTTPStatus)
}

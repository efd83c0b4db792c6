// Package content читает агрегированный документ портфолио из headless CMS.
package content

import (
	"context"
	"errors"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

// Store выполняет один агрегированный запрос и возвращает документ целиком.
type Store interface {
	Fetch(ctx context.Context) (*models.Portfolio, error)
}

// FetchFailure описывает единственный вид ошибки получения контента: сеть, недоступный
// источник, некорректный ответ или ошибка выполнения запроса на стороне CMS.
type FetchFailure struct {
	Reason string
	Cause  error
}

func (e *FetchFailure) Error() string {
	switch {
	case e.Reason == "" && e.Cause != nil:
		return e.Cause.Error()
	case e.Cause != nil:
		return e.Reason + ": " + e.Cause.Error()
	default:
		return e.Reason
	}
}

func (e *FetchFailure) Unwrap() error {
	return e.Cause
}

// AsFetchFailure приводит любую ошибку к FetchFailure, сохраняя исходное сообщение.
func AsFetchFailure(err error) *FetchFailure {
	if err == nil {
		return nil
	}
	var ff *FetchFailure
	if errors.As(err, &ff) {
		return ff
	}
	return &FetchFailure{Cause: err}
}

// IsFetchFailure сообщает, является ли ошибка ошибкой получения контента.
func IsFetchFailure(err error) bool {
	var ff *FetchFailure
	return errors.As(err, &ff)
}

func fail(reason string, cause error) error {
	return &FetchFailure{Reason: reason, Cause: cause}
}

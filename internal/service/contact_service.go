package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-site/internal/repository"
	"github.com/ignatzorin/portfolio-site/internal/validation"
)

const (
	defaultMessagesLimit = 20
	maxMessagesLimit     = 100
)

// ContactRepository описывает зависимости ContactService от слоя хранилища.
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
	List(ctx context.Context, filter repository.ContactFilter) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int, error)
}

// SubmissionRecorder получает итог каждой отправки формы (метрики).
type SubmissionRecorder interface {
	ContactSubmitted(result string)
}

// ContactService принимает сообщения из формы обратной связи.
type ContactService struct {
	repo     ContactRepository
	recorder SubmissionRecorder
}

// NewContactService создаёт сервис. recorder может быть nil.
func NewContactService(repo ContactRepository, recorder SubmissionRecorder) *ContactService {
	return &ContactService{repo: repo, recorder: recorder}
}

// MessagePage описывает страницу сообщений для администратора.
type MessagePage struct {
	Messages []models.ContactMessage `json:"messages"`
	Unread   int                     `json:"unread"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

// Submit валидирует и сохраняет сообщение.
func (s *ContactService) Submit(ctx context.Context, in validation.ContactInput) (*models.ContactMessage, error) {
	in = in.Normalize()
	if err := validation.ValidateContact(in); err != nil {
		s.record("invalid")
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		s.record("error")
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось сохранить сообщение")
	}

	s.record("stored")
	logger.Component("contact").WithFields(logrus.Fields{
		"message_id": msg.ID,
	}).Info("Сообщение из формы сохранено")
	return msg, nil
}

// List возвращает сообщения и число непрочитанных.
func (s *ContactService) List(ctx context.Context, limit, offset int, unreadOnly bool) (*MessagePage, error) {
	if limit <= 0 {
		limit = defaultMessagesLimit
	}
	if limit > maxMessagesLimit {
		limit = maxMessagesLimit
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := s.repo.List(ctx, repository.ContactFilter{UnreadOnly: unreadOnly, Limit: limit, Offset: offset})
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось получить сообщения")
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось посчитать сообщения")
	}

	return &MessagePage{Messages: messages, Unread: unread, Limit: limit, Offset: offset}, nil
}

// MarkRead отмечает сообщение прочитанным.
func (s *ContactService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContactMessageNotFound) {
			return apperror.ErrMessageNotFound
		}
		return apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось обновить сообщение")
	}
	return nil
}

func (s *ContactService) record(result string) {
	if s.recorder != nil {
		s.recorder.ContactSubmitted(result)
	}
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-site/internal/models"
)

// ErrContactMessageNotFound возвращается, когда сообщение не найдено.
var ErrContactMessageNotFound = errors.New("contact message not found")

// ContactFilter задаёт выборку сообщений.
type ContactFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ContactRepository хранит сообщения формы обратной связи.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository создаёт экземпляр репозитория.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create сохраняет сообщение; ID назначается здесь, created_at проставляет база.
func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query := `
		INSERT INTO contact_messages (id, name, email, subject, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING read, created_at
	`
	if err := r.db.QueryRowxContext(ctx, query, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.Read, &msg.CreatedAt); err != nil {
		return fmt.Errorf("contact repository: insert %w", err)
	}
	return nil
}

// List возвращает сообщения от новых к старым.
func (r *ContactRepository) List(ctx context.Context, filter ContactFilter) ([]models.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, read, created_at
		FROM contact_messages
		WHERE ($1 = FALSE OR read = FALSE)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	messages := []models.ContactMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, filter.UnreadOnly, filter.Limit, filter.Offset); err != nil {
		return nil, fmt.Errorf("contact repository: list %w", err)
	}
	return messages, nil
}

// MarkRead отмечает сообщение прочитанным.
func (r *ContactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE contact_messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("contact repository: mark read %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("contact repository: mark read rows affected %w", err)
	}
	if rowsAffected == 0 {
		return ErrContactMessageNotFound
	}
	return nil
}

// CountUnread возвращает число непрочитанных сообщений.
func (r *ContactRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM contact_messages WHERE read = FALSE`); err != nil {
		return 0, fmt.Errorf("contact repository: count unread %w", err)
	}
	return count, nil
}

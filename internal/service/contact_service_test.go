package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-site/internal/models"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-site/internal/repository"
	"github.com/ignatzorin/portfolio-site/internal/validation"
)

type mockContactRepo struct {
	mock.Mock
}

func (m *mockContactRepo) Create(ctx context.Context, msg *models.ContactMessage) error {
	args := m.Called(ctx, msg)
	if args.Error(0) == nil {
		msg.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockContactRepo) List(ctx context.Context, filter repository.ContactFilter) ([]models.ContactMessage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *mockContactRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockContactRepo) CountUnread(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type recorderStub struct {
	results []string
}

func (r *recorderStub) ContactSubmitted(result string) {
	r.results = append(r.results, result)
}

func validInput() validation.ContactInput {
	return validation.ContactInput{
		Name:    " Jane ",
		Email:   "JANE@example.com",
		Subject: "Project",
		Message: "Hello, I would like to talk about a project.",
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	repo := new(mockContactRepo)
	rec := &recorderStub{}
	svc := NewContactService(repo, rec)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*models.ContactMessage")).Return(nil)

	msg, err := svc.Submit(ctx, validInput())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, "Jane", msg.Name)
	assert.Equal(t, "jane@example.com", msg.Email)
	assert.Equal(t, []string{"stored"}, rec.results)
	repo.AssertExpectations(t)
}

func TestContactService_Submit_Invalid(t *testing.T) {
	repo := new(mockContactRepo)
	rec := &recorderStub{}
	svc := NewContactService(repo, rec)

	in := validInput()
	in.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), in)

	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, []string{"invalid"}, rec.results)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactService_Submit_RepoError(t *testing.T) {
	repo := new(mockContactRepo)
	svc := NewContactService(repo, nil)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.Submit(ctx, validInput())

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.ErrCodeInternal, appErr.Code)
}

func TestContactService_List_ClampsLimit(t *testing.T) {
	repo := new(mockContactRepo)
	svc := NewContactService(repo, nil)
	ctx := context.Background()

	expected := repository.ContactFilter{UnreadOnly: true, Limit: maxMessagesLimit, Offset: 0}
	repo.On("List", ctx, expected).Return([]models.ContactMessage{{Name: "Jane"}}, nil)
	repo.On("CountUnread", ctx).Return(1, nil)

	page, err := svc.List(ctx, 1000, -5, true)

	require.NoError(t, err)
	assert.Len(t, page.Messages, 1)
	assert.Equal(t, 1, page.Unread)
	assert.Equal(t, maxMessagesLimit, page.Limit)
	assert.Equal(t, 0, page.Offset)
}

func TestContactService_MarkRead_NotFound(t *testing.T) {
	repo := new(mockContactRepo)
	svc := NewContactService(repo, nil)
	ctx := context.Background()
	id := uuid.New()

	repo.On("MarkRead", ctx, id).Return(repository.ErrContactMessageNotFound)

	err := svc.MarkRead(ctx, id)
	assert.ErrorIs(t, err, apperror.ErrMessageNotFound)
}

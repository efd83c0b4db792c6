package service

import (
	"context"
	"crypto/subtle"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/ignatzorin/portfolio-site/internal/logger"
	"github.com/ignatzorin/portfolio-site/internal/pkg/apperror"
)

// AdminSubject используется как subject токена владельца сайта.
const AdminSubject = "owner"

// AdminAuthService проверяет пароль владельца и выпускает токены.
type AdminAuthService struct {
	passwordHash []byte
	tokens       *TokenManager
}

// NewAdminAuthService создаёт сервис. Пустой хэш отключает вход.
func NewAdminAuthService(passwordHash string, tokens *TokenManager) *AdminAuthService {
	return &AdminAuthService{
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

// Enabled сообщает, настроен ли вход администратора.
func (s *AdminAuthService) Enabled() bool {
	return s != nil && len(s.passwordHash) > 0 && s.tokens != nil
}

// Login проверяет пароль и возвращает access токен.
func (s *AdminAuthService) Login(ctx context.Context, password string) (*AccessToken, error) {
	if !s.Enabled() {
		return nil, apperror.ErrAdminDisabled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logger.Component("admin_auth").Warn("Неудачная попытка входа администратора")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateAccess(AdminSubject, RoleAdmin)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "не удалось выпустить токен")
	}

	logger.Component("admin_auth").WithFields(logrus.Fields{
		"expires_at": token.ExpiresAt,
	}).Info("Администратор вошёл")
	return token, nil
}

// Authorize проверяет access токен и роль администратора.
func (s *AdminAuthService) Authorize(raw string) (string, error) {
	if !s.Enabled() {
		return "", apperror.ErrAdminDisabled
	}
	sub, role, err := s.tokens.ParseAccess(raw)
	if err != nil {
		return "", apperror.Wrap(err, apperror.ErrCodeUnauthorized, "токен невалиден")
	}
	if subtle.ConstantTimeCompare([]byte(role), []byte(RoleAdmin)) != 1 {
		return "", apperror.ErrUnauthorized
	}
	return sub, nil
}

package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type Service struct {
	users  UserRepository
	tokens *TokenManager
	logger *zap.Logger
}

func NewService(users UserRepository, tokens *TokenManager, logger *zap.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

// Login verifies the credentials and issues a signed token carrying the
// user's role. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return "", nil, apperrors.NewUnauthorizedError("invalid credentials")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperrors.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("failed to issue token", zap.Uint("userId", user.ID), zap.Error(err))
		return "", nil, apperrors.NewInternalError("issuing token", err)
	}

	return token, user, nil
}

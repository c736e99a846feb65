package auth

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"
)

type mockUserRepository struct {
	FindByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:       3,
				Name:     "Staff User",
				Email:    email,
				Password: hashPassword(t, "123456"),
				Role:     domain.RoleStaff,
			}, nil
		},
	}

	tokens := NewTokenManager(testAuthConfig())
	svc := NewService(users, tokens, zap.NewNop())

	token, user, err := svc.Login(ctx, "staff@example.com", "123456")
	if err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
	if token == "" {
		t.Errorf("expected a token")
	}
	if user.Role != domain.RoleStaff {
		t.Errorf("expected staff role, got %s", user.Role)
	}

	claims, err := tokens.Validate(token)
	if err != nil {
		t.Fatalf("issued token should validate, got %v", err)
	}
	if claims.Role != domain.RoleStaff {
		t.Errorf("expected staff role in claims, got %s", claims.Role)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 3, Email: email, Password: hashPassword(t, "123456"), Role: domain.RoleStaff}, nil
		},
	}

	svc := NewService(users, NewTokenManager(testAuthConfig()), zap.NewNop())

	_, _, err := svc.Login(ctx, "staff@example.com", "wrong")
	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	users := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, apperrors.NewNotFoundError("user not found")
		},
	}

	svc := NewService(users, NewTokenManager(testAuthConfig()), zap.NewNop())

	_, _, err := svc.Login(ctx, "nobody@example.com", "123456")
	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

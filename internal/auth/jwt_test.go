package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		Issuer:      "stockroom-test",
	}
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	user := &domain.User{ID: 7, Name: "Manager User", Email: "manager@example.com", Role: domain.RoleManager}

	token, err := tm.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Manager User", claims.Name)
	assert.Equal(t, domain.RoleManager, claims.Role)
	assert.Equal(t, "stockroom-test", claims.Issuer)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	_, err := tm.Validate("not-a-token")
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	other := NewTokenManager(config.AuthConfig{JWTSecret: "other-secret", TokenExpiry: time.Hour, Issuer: "x"})
	token, err := other.Generate(&domain.User{ID: 1, Role: domain.RoleStaff})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenExpiry = -time.Minute
	tm := NewTokenManager(cfg)

	token, err := tm.Generate(&domain.User{ID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsUnknownRole(t *testing.T) {
	tm := NewTokenManager(testAuthConfig())

	token, err := tm.Generate(&domain.User{ID: 1, Role: domain.Role("superuser")})
	require.NoError(t, err)

	_, err = tm.Validate(token)
	_, ok := apperrors.IsUnauthorizedError(err)
	assert.True(t, ok)
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"stockroom/internal/config"
	"stockroom/internal/domain"
	apperrors "stockroom/internal/errors"
)

// Claims are the token claims carried by every issued credential. Role is
// what the rest of the system consumes; nothing downstream re-verifies the
// token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint        `json:"userId"`
	Name   string      `json:"name"`
	Role   domain.Role `json:"role"`
}

type TokenManager struct {
	secret []byte
	expiry time.Duration
	issuer string
}

func NewTokenManager(cfg config.AuthConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.TokenExpiry,
		issuer: cfg.Issuer,
	}
}

func (m *TokenManager) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a presented credential and returns its
// claims, including the resolved role.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("token is not valid")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewUnauthorizedError("token is not valid")
	}

	if !claims.Role.Valid() {
		return nil, apperrors.NewUnauthorizedError("token carries an unknown role")
	}

	return claims, nil
}

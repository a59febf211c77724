package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/transfer-auction/internal/usecase"
)

const adminSubject = "admin"

// TokenManager issues and verifies the signed session tokens the admin
// panel holds after login. Team tokens are a separate, opaque credential
// and never pass through here.
type TokenManager struct {
	secret        []byte
	ttl           time.Duration
	adminPassword string
	now           func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration, adminPassword string) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		ttl:           ttl,
		adminPassword: adminPassword,
		now:           time.Now,
	}
}

// Login checks the shared admin password and mints a session token. The
// comparison is constant time so response timing leaks nothing about the
// password prefix.
func (m *TokenManager) Login(password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) != 1 {
		return "", fmt.Errorf("admin login: %w", usecase.ErrUnauthorized)
	}

	now := m.now()
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign admin session token: %w", err)
	}

	return signed, nil
}

// Verify reports whether token is a live admin session.
func (m *TokenManager) Verify(token string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return fmt.Errorf("verify admin session token: %w", usecase.ErrUnauthorized)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return fmt.Errorf("admin session subject mismatch: %w", usecase.ErrUnauthorized)
	}

	return nil
}

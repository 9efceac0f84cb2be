// Package token issues and verifies the signed session tokens that prove
// caller identity without any server-side session state.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when the signature does not match or the
	// token is malformed.
	ErrInvalidToken = errors.New("token is invalid")
	// ErrExpiredToken is returned when the token is past its validity window.
	ErrExpiredToken = errors.New("token has expired")
)

// Service signs and verifies session tokens. Verification is stateless;
// there is no revocation list, invalidation happens client-side by
// discarding the stored token.
type Service struct {
	secret []byte
	expiry time.Duration
}

// NewService returns a Service signing with the given secret and issuing
// tokens valid for the given window.
func NewService(secret string, expiry time.Duration) *Service {
	return &Service{secret: []byte(secret), expiry: expiry}
}

// Issue creates a signed token embedding the user identifier as the subject.
func (s *Service) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": "devlink-api",
		"exp": now.Add(s.expiry).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user
// identifier. It fails with ErrExpiredToken past the validity window and
// ErrInvalidToken for every other defect.
func (s *Service) Verify(tokenString string) (uint, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}
	if !tok.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}

	return uint(userID), nil
}

// generateJTI creates a unique token ID to prevent replay attacks.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for every rejection: malformed input,
// bad signature, expired token, wrong claims shape. Callers must not learn
// which one it was.
var ErrInvalidToken = errors.New("token is not valid")

// Service issues and verifies the session tokens carried in the
// x-auth-token header.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token embedding the user identifier as {"user":{"id":...}}.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user": map[string]any{
			"id": userID,
		},
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates signature and expiry and returns the embedded user id.
func (s *Service) Verify(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", ErrInvalidToken
	}

	userID, ok := user["id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}

	return userID, nil
}

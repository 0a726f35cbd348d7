// Package token implements the session token service on top of symmetric
// HMAC JWTs. Tokens are stateless: there is no revocation, only expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// DefaultTTL is how long an issued session stays valid.
const DefaultTTL = 24 * time.Hour

// Claims are the signed contents of a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Service signs and validates session tokens with a single shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New builds a Service. An empty secret is a fatal deployment
// misconfiguration: the constructor fails so the process refuses to start
// rather than serving tokens it cannot verify.
func New(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: signing secret is not set: %w", domain.ErrConfig)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the payload, expiring ttl from now.
func (s *Service) Issue(payload ports.TokenPayload) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:   payload.UserID,
		Username: payload.Username,
		Role:     string(payload.Role),
	})

	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a raw token. Outcomes are disjoint: a valid
// payload, domain.ErrTokenExpired, or domain.ErrTokenInvalid (signature
// mismatch, corrupt structure, wrong algorithm, unknown role).
func (s *Service) Validate(raw string) (*ports.TokenPayload, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t.Valid {
		return nil, domain.ErrTokenInvalid
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, domain.ErrTokenInvalid
	}

	return &ports.TokenPayload{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     role,
	}, nil
}

package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// TokenPayload is the identity carried inside a session token.
type TokenPayload struct {
	UserID   string
	Username string
	Role     domain.Role
}

// TokenService issues and validates signed, time-limited session tokens.
type TokenService interface {
	Issue(payload TokenPayload) (string, error)
	// Validate returns the embedded payload, or domain.ErrTokenExpired /
	// domain.ErrTokenInvalid so the caller can report accurate feedback.
	Validate(raw string) (*TokenPayload, error)
}

// PasswordHasher derives and verifies salted password hashes.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) (bool, error)
}

// UserRepository is the persistence contract for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// AuthService implements registration, login, and session resolution.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// ResolveSession turns a raw token (possibly empty) into the Principal it
	// proves, re-checking that the account still exists.
	ResolveSession(ctx context.Context, raw string) (*domain.Principal, error)
}

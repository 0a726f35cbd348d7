package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// AuthService implements registration, login, and session resolution.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account. The role always defaults to USER; admins
// are promoted out of band.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, &domain.Error{Code: domain.CodeValidation, Message: "username and password are required"}
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error().Err(err).Msg("password hashing failed")
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Login checks credentials and issues a session token. The token embeds the
// user's role as of now; role changes only take effect on the next login.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			// Same message as a bad password, distinct code for monitoring.
			return "", nil, &domain.Error{Code: domain.CodeUserNotFound, Message: domain.ErrInvalidCredentials.Message}
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("password verification failed")
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	tokenStr, err := s.tokens.Issue(ports.TokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("token issuance failed")
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")
	return tokenStr, user, nil
}

// ResolveSession recovers the authenticated identity from a raw token. The
// user is re-fetched so a deleted account with a live token is rejected. The
// Principal's role comes from the signed token, not the fresh record: role
// edits take effect at the next login, never mid-session.
func (s *AuthService) ResolveSession(ctx context.Context, raw string) (*domain.Principal, error) {
	if raw == "" {
		metrics.SessionRejectionsTotal.WithLabelValues("missing_token").Inc()
		return nil, domain.ErrMissingToken
	}

	payload, err := s.tokens.Validate(raw)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenExpired):
			metrics.SessionRejectionsTotal.WithLabelValues("expired").Inc()
		default:
			metrics.SessionRejectionsTotal.WithLabelValues("invalid").Inc()
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, payload.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.SessionRejectionsTotal.WithLabelValues("user_not_found").Inc()
			return nil, domain.ErrUserNotFound
		}
		// Store failure: could not verify, which is not the same as
		// definitively unauthenticated.
		metrics.SessionRejectionsTotal.WithLabelValues("store_error").Inc()
		s.logger.Error().Err(err).Str("user_id", payload.UserID).Msg("session user lookup failed")
		return nil, err
	}

	return &domain.Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     payload.Role,
	}, nil
}

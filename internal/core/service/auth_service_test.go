package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
	"github.com/inkwell/blog-api/internal/security"
	"github.com/inkwell/blog-api/internal/token"
)

type stubUserRepo struct {
	byID       map[string]*domain.User
	byUsername map[string]*domain.User
	findErr    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:       make(map[string]*domain.User),
		byUsername: make(map[string]*domain.User),
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.byUsername[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	r.byID[user.ID] = cloneUser(user)
	r.byUsername[user.Username] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func newAuthService(t *testing.T, repo ports.UserRepository) *AuthService {
	t.Helper()
	tokens, err := token.New("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return NewAuthService(repo, security.NewHasher(), tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	user, err := svc.Register(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role USER, got %s", user.Role)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.PasswordHash == "secret123" {
		t.Fatalf("expected password to be hashed")
	}

	ok, err := security.NewHasher().Verify("secret123", user.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo())

	_, err := svc.Register(context.Background(), "", "pass")
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != domain.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "bob", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass2"); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "carol", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	raw, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if raw == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	tokens, _ := token.New("test-secret", time.Hour)
	payload, err := tokens.Validate(raw)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if payload.UserID != user.ID || payload.Username != "carol" || payload.Role != domain.RoleUser {
		t.Fatalf("unexpected token payload: %+v", payload)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "dave", "goodpass")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo())

	_, _, err := svc.Login(context.Background(), "ghost", "pass")
	var de *domain.Error
	if !errors.As(err, &de) || de.Code != domain.CodeUserNotFound {
		t.Fatalf("expected USER_NOT_FOUND code, got %v", err)
	}
	if de.Message != domain.ErrInvalidCredentials.Message {
		t.Fatalf("unknown-user message must not reveal account absence: %q", de.Message)
	}
}

func TestAuthService_ResolveSession_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	user, err := svc.Register(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	raw, _, err := svc.Login(context.Background(), "erin", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	principal, err := svc.ResolveSession(context.Background(), raw)
	if err != nil {
		t.Fatalf("ResolveSession returned error: %v", err)
	}
	if principal.ID != user.ID || principal.Username != "erin" || principal.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestAuthService_ResolveSession_MissingToken(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo())

	if _, err := svc.ResolveSession(context.Background(), ""); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthService_ResolveSession_InvalidToken(t *testing.T) {
	svc := newAuthService(t, newStubUserRepo())

	if _, err := svc.ResolveSession(context.Background(), "garbage"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_ResolveSession_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	user, _ := svc.Register(context.Background(), "frank", "pass")
	raw, _, err := svc.Login(context.Background(), "frank", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.byID, user.ID)
	delete(repo.byUsername, "frank")

	if _, err := svc.ResolveSession(context.Background(), raw); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for deleted user, got %v", err)
	}
}

func TestAuthService_ResolveSession_StoreFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(t, repo)

	_, _ = svc.Register(context.Background(), "gina", "pass")
	raw, _, err := svc.Login(context.Background(), "gina", "pass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	repo.findErr = errors.New("connection reset")

	_, err = svc.ResolveSession(context.Background(), raw)
	if err == nil {
		t.Fatalf("expected error on store failure")
	}
	// A store outage must not masquerade as an authentication failure.
	if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("store failure reported as auth failure: %v", err)
	}
}

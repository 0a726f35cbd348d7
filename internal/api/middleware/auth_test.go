package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
)

type stubAuthService struct {
	resolveFn func(ctx context.Context, raw string) (*domain.Principal, error)
}

func (s *stubAuthService) Register(context.Context, string, string) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) ResolveSession(ctx context.Context, raw string) (*domain.Principal, error) {
	return s.resolveFn(ctx, raw)
}

func newAuthContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAuthenticate_BearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer raw-token")
	c, rec := newAuthContext(req)

	stub := &stubAuthService{resolveFn: func(_ context.Context, raw string) (*domain.Principal, error) {
		if raw != "raw-token" {
			t.Fatalf("expected bearer token, got %q", raw)
		}
		return &domain.Principal{ID: "u-1", Username: "alice", Role: domain.RoleAdmin}, nil
	}}

	called := false
	handler := Authenticate(stub)(func(c echo.Context) error {
		called = true
		principal, ok := PrincipalFrom(c)
		if !ok {
			t.Fatalf("principal not attached")
		}
		if principal.Username != "alice" || principal.Role != domain.RoleAdmin {
			t.Fatalf("unexpected principal: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_CookieWinsOverHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")
	c, _ := newAuthContext(req)

	stub := &stubAuthService{resolveFn: func(_ context.Context, raw string) (*domain.Principal, error) {
		if raw != "cookie-token" {
			t.Fatalf("cookie must take precedence, got %q", raw)
		}
		return &domain.Principal{ID: "u-1", Username: "alice", Role: domain.RoleUser}, nil
	}}

	handler := Authenticate(stub)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestAuthenticate_NoCredential(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c, _ := newAuthContext(req)

	stub := &stubAuthService{resolveFn: func(_ context.Context, raw string) (*domain.Principal, error) {
		if raw != "" {
			t.Fatalf("expected empty token, got %q", raw)
		}
		return nil, domain.ErrMissingToken
	}}

	handler := Authenticate(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthenticate_MalformedAuthorizationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	c, _ := newAuthContext(req)

	stub := &stubAuthService{resolveFn: func(_ context.Context, raw string) (*domain.Principal, error) {
		if raw != "" {
			t.Fatalf("non-bearer scheme must yield empty token, got %q", raw)
		}
		return nil, domain.ErrMissingToken
	}}

	handler := Authenticate(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuthenticate_ResolutionFailurePropagates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired-token")
	c, _ := newAuthContext(req)

	stub := &stubAuthService{resolveFn: func(context.Context, string) (*domain.Principal, error) {
		return nil, domain.ErrTokenExpired
	}}

	handler := Authenticate(stub)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

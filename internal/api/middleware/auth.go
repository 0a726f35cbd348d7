package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// principalKey is the echo context key the resolved Principal is stored
// under for the duration of one request.
const principalKey = "principal"

// cookieName is the session cookie carrying the token.
const cookieName = "token"

// Authenticate resolves the session token into a Principal and injects it
// into the request context. Failures propagate as typed domain errors for
// the central error handler.
func Authenticate(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := auth.ResolveSession(c.Request().Context(), extractToken(c))
			if err != nil {
				return err
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// extractToken reads the credential from the request. The cookie wins over
// the Authorization header when both are present.
func extractToken(c echo.Context) string {
	if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// PrincipalFrom returns the Principal attached by Authenticate, if any.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// RequireRoles enforces an exact-match role allow-list. There is no role
// hierarchy: ADMIN passes a USER-only route only when listed explicitly.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	allowSet := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowSet[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return domain.ErrUnauthorized
			}
			if _, ok := allowSet[principal.Role]; !ok {
				return domain.Forbidden(allowed...)
			}
			return next(c)
		}
	}
}

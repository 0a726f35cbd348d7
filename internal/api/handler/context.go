package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/api/middleware"
	"github.com/inkwell/blog-api/internal/core/domain"
)

// ctxPrincipal extracts the Principal injected by the Authenticate
// middleware. Its absence on a guarded route means the route was wired
// without the middleware, which is a server bug, not a client one; it is
// still reported as 401 to avoid leaking wiring details.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return principal, nil
}

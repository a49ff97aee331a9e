package context

import (
	"context"

	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated caller.
const KeyPrincipal ContextKey = "principal"

// SetPrincipal stores the authenticated caller in both echo.Context and the request context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the authenticated caller, if any.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(entity.Principal)

	return principal, ok
}

// WithPrincipal returns a new context carrying the caller.
func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// GetPrincipalFromContext extracts the caller from a standard context.Context.
func GetPrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(entity.Principal)

	return principal, ok
}

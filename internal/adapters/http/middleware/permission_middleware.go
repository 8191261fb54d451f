package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

const scopeContextKey = "permission_scope"

// RequirePermission resolves the most permissive scope the authenticated
// user holds for action and attaches it for the handler to apply as a data
// filter. No datastore access happens here.
func RequirePermission(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := AuthUser(c)
			if !ok {
				return domain.NewAuthRequired()
			}
			scope, ok := domain.ResolveScope(user.Permissions, action)
			if !ok {
				return domain.NewPermissionDenied()
			}
			c.Set(scopeContextKey, scope)
			return next(c)
		}
	}
}

func PermissionScope(c echo.Context) (domain.Scope, bool) {
	scope, ok := c.Get(scopeContextKey).(domain.Scope)
	return scope, ok
}

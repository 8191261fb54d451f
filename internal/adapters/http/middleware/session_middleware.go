package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/application"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

const (
	userContextKey      = "auth_user"
	sessionIDContextKey = "session_id"
)

// Session authenticates the request from its session cookie and attaches the
// resulting user and session id to the echo context. Exactly one datastore
// read per request, inside AuthService.Authenticate.
func Session(authSvc *application.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.NewAuthRequired()
			}
			user, sessionID, err := authSvc.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			c.Set(userContextKey, user)
			c.Set(sessionIDContextKey, sessionID)
			return next(c)
		}
	}
}

func AuthUser(c echo.Context) (domain.AuthenticatedUser, bool) {
	user, ok := c.Get(userContextKey).(domain.AuthenticatedUser)
	return user, ok
}

func SessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionIDContextKey).(string)
	return id, ok
}

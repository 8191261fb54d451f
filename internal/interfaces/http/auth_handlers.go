package http

import (
	stdhttp "net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/jmjalil96/friendly-system-sub003/internal/adapters/http/middleware"
	"github.com/jmjalil96/friendly-system-sub003/internal/application"
	"github.com/jmjalil96/friendly-system-sub003/internal/domain"
)

// CookieConfig carries the session cookie attributes the auth handlers need.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	service *application.AuthService
	cookie  CookieConfig
}

func NewAuthHandler(service *application.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	req := middleware.Body[loginRequest](c)
	if req == nil {
		return domain.NewValidationError("missing request body")
	}
	result, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	return c.JSON(stdhttp.StatusOK, map[string]any{
		"id":         result.User.ID,
		"email":      result.User.Email,
		"first_name": result.User.FirstName,
		"last_name":  result.User.LastName,
	})
}

func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, ok := middleware.SessionID(c)
	if !ok {
		return domain.NewAuthRequired()
	}
	if err := h.service.Logout(c.Request().Context(), sessionID); err != nil {
		return err
	}
	h.clearSessionCookie(c)
	return c.NoContent(stdhttp.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := middleware.AuthUser(c)
	if !ok {
		return domain.NewAuthRequired()
	}
	return c.JSON(stdhttp.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&stdhttp.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: stdhttp.SameSiteLaxMode,
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&stdhttp.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: stdhttp.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

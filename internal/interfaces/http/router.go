package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	mw "github.com/jmjalil96/friendly-system-sub003/internal/adapters/http/middleware"
	"github.com/jmjalil96/friendly-system-sub003/internal/ports"
)

type Handlers struct {
	Auth     *AuthHandler
	Clients  *ClientsHandler
	Insurers *InsurersHandler
	Policies *PoliciesHandler
	Claims   *ClaimsHandler
	Users    *UsersHandler
}

type Middleware struct {
	Session       echo.MiddlewareFunc
	XRay          echo.MiddlewareFunc
	RequestLogger echo.MiddlewareFunc
}

// NewRouter wires every route with its middleware chain in pipeline order:
// validation, then authentication, then permission resolution, then handler.
func NewRouter(h Handlers, m Middleware, logger ports.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewErrorHandler(logger)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	if m.XRay != nil {
		e.Use(m.XRay)
	}
	if m.RequestLogger != nil {
		e.Use(m.RequestLogger)
	}

	validate := func(s mw.Schema) echo.MiddlewareFunc { return mw.Validate(s, logger) }
	idOnly := mw.Schema{Params: func() any { return new(idParam) }}

	e.GET("/health", Health)

	e.POST("/auth/login", h.Auth.Login,
		validate(mw.Schema{Body: func() any { return new(loginRequest) }}))
	e.POST("/auth/logout", h.Auth.Logout, m.Session)
	e.GET("/auth/me", h.Auth.Me, m.Session)

	e.GET("/clients", h.Clients.List,
		m.Session, mw.RequirePermission("clients:view"))
	e.GET("/clients/:id", h.Clients.Get,
		validate(idOnly), m.Session, mw.RequirePermission("clients:view"))
	e.POST("/clients", h.Clients.Create,
		validate(mw.Schema{Body: func() any { return new(clientRequest) }}),
		m.Session, mw.RequirePermission("clients:create"))
	e.PUT("/clients/:id", h.Clients.Update,
		validate(mw.Schema{
			Params: func() any { return new(idParam) },
			Body:   func() any { return new(clientRequest) },
		}),
		m.Session, mw.RequirePermission("clients:update"))

	e.GET("/insurers", h.Insurers.List,
		m.Session, mw.RequirePermission("insurers:view"))
	e.GET("/insurers/:id", h.Insurers.Get,
		validate(idOnly), m.Session, mw.RequirePermission("insurers:view"))
	e.POST("/insurers", h.Insurers.Create,
		validate(mw.Schema{Body: func() any { return new(insurerRequest) }}),
		m.Session, mw.RequirePermission("insurers:create"))
	e.PUT("/insurers/:id", h.Insurers.Update,
		validate(mw.Schema{
			Params: func() any { return new(idParam) },
			Body:   func() any { return new(insurerRequest) },
		}),
		m.Session, mw.RequirePermission("insurers:update"))

	e.GET("/policies", h.Policies.List,
		m.Session, mw.RequirePermission("policies:view"))
	e.GET("/policies/:id", h.Policies.Get,
		validate(idOnly), m.Session, mw.RequirePermission("policies:view"))
	e.POST("/policies", h.Policies.Create,
		validate(mw.Schema{Body: func() any { return new(createPolicyRequest) }}),
		m.Session, mw.RequirePermission("policies:create"))
	e.PUT("/policies/:id", h.Policies.Update,
		validate(mw.Schema{
			Params: func() any { return new(idParam) },
			Body:   func() any { return new(updatePolicyRequest) },
		}),
		m.Session, mw.RequirePermission("policies:update"))

	e.GET("/claims", h.Claims.List,
		m.Session, mw.RequirePermission("claims:view"))
	e.GET("/claims/:id", h.Claims.Get,
		validate(idOnly), m.Session, mw.RequirePermission("claims:view"))
	e.POST("/claims", h.Claims.Create,
		validate(mw.Schema{Body: func() any { return new(createClaimRequest) }}),
		m.Session, mw.RequirePermission("claims:create"))
	e.PUT("/claims/:id", h.Claims.Update,
		validate(mw.Schema{
			Params: func() any { return new(idParam) },
			Body:   func() any { return new(updateClaimRequest) },
		}),
		m.Session, mw.RequirePermission("claims:update"))

	e.GET("/users", h.Users.List,
		m.Session, mw.RequirePermission("users:view"))

	return e
}

package api

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/financeassistant/authform/internal/api/handler"
	"github.com/financeassistant/authform/internal/api/middleware"
	"github.com/financeassistant/authform/internal/core/ports"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	AuthService  ports.AuthService
	JWTSecret    string
	HealthChecks map[string]func(context.Context) error
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())

	// --- User routes ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	user := e.Group("/api/user")
	user.POST("/login", authHandler.Login)
	user.POST("/register", authHandler.Register)
	user.GET("/me", authHandler.Me, middleware.Auth(d.JWTSecret))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.HealthChecks)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

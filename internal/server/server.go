package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do/v2"

	"github.com/nfrund/profileview/internal/app"
	"github.com/nfrund/profileview/internal/config"
	appmw "github.com/nfrund/profileview/internal/middleware"
	"github.com/nfrund/profileview/internal/module"
	"github.com/nfrund/profileview/internal/registry"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	deps     app.Dependencies
	injector *do.RootScope
	modules  []module.Module
	registry *registry.Registry
	cancel   context.CancelFunc
}

// New creates a new Server instance from a validated configuration.
func New(cfg *config.Config) (*Server, error) {
	injector := app.NewInjector(cfg)
	deps, err := app.Resolve(injector)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if r, ok := deps.Renderer.(echo.Renderer); ok {
		e.Renderer = r
	}
	setupErrorHandling(e)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmw.Logger)

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400, // flashes only live until the next page view
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		E:        e,
		Cfg:      cfg,
		deps:     deps,
		injector: injector,
		modules:  app.NewModules(deps),
		registry: registry.New(cfg),
		cancel:   cancel,
	}

	if err := deps.Audit.Start(ctx, deps.Bus); err != nil {
		cancel()
		return nil, fmt.Errorf("start audit logger: %w", err)
	}

	s.RegisterRoutes()
	if err := s.bootModules(ctx); err != nil {
		cancel()
		return nil, err
	}
	return s, nil
}

// bootModules registers every module's services, then boots each one under
// its own route group.
func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}
	for _, m := range s.modules {
		if err := m.Boot(ctx, s.E.Group("/"+m.Name()), s.registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}

// Registry exposes the module registry, useful for testing.
func (s *Server) Registry() *registry.Registry {
	return s.registry
}

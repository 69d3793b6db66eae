package myprofile

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/profileview/internal/credential"
	"github.com/nfrund/profileview/internal/middleware"
	"github.com/nfrund/profileview/internal/module"
	"github.com/nfrund/profileview/internal/profile"
	"github.com/nfrund/profileview/internal/pubsub"
	"github.com/nfrund/profileview/internal/registry"
	"github.com/nfrund/profileview/internal/rendering"
)

// HandlerKey exposes the module's handler in the registry.
var HandlerKey = registry.Key[*Handler]("profile.handler")

// Dependencies holds the services the profile module needs.
type Dependencies struct {
	Fetcher     Fetcher
	Renderer    rendering.Renderer
	Publisher   pubsub.Publisher
	Credentials credential.Source
	// BasePath is where the module's group is mounted, e.g. "/profile".
	BasePath           string
	LoginURL           string
	StrictPresence     bool
	RateLimitPerMinute int
}

// Module mounts the read-only profile view.
type Module struct {
	module.BaseModule
	deps    Dependencies
	handler *Handler
}

// New creates the profile module.
func New(deps Dependencies) *Module {
	policy := profile.BlankFalsy
	if deps.StrictPresence {
		policy = profile.BlankAbsent
	}
	return &Module{
		deps: deps,
		handler: NewHandler(
			deps.Fetcher,
			deps.Renderer,
			deps.Publisher,
			deps.LoginURL,
			deps.BasePath+"/details",
			policy,
		),
	}
}

func (m *Module) Name() string {
	return "profile"
}

func (m *Module) Register(reg *registry.Registry) error {
	registry.Set(reg, HandlerKey, m.handler)
	return nil
}

func (m *Module) Boot(ctx context.Context, group *echo.Group, reg *registry.Registry) error {
	slog.Info("Booting profile module", "base_path", m.deps.BasePath)

	guard := middleware.SessionGuard(middleware.SessionGuardConfig{
		Source:   m.deps.Credentials,
		LoginURL: m.deps.LoginURL,
		OnMissing: func(c echo.Context) {
			m.handler.publish(c, pubsub.ViewOutcome{Outcome: pubsub.OutcomeSessionMissing})
		},
	})
	mws := []echo.MiddlewareFunc{guard}
	if m.deps.RateLimitPerMinute > 0 {
		mws = append(mws, middleware.RateLimiter(m.deps.RateLimitPerMinute))
	}

	group.GET("", m.handler.Page, mws...)
	group.GET("/details", m.handler.Details, mws...)
	return nil
}

package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/profileview/internal/registry"
)

// Module is a self-contained application feature mounted under its own
// route group.
type Module interface {
	// Name returns a unique identifier, also used as the route prefix.
	Name() string

	// Register publishes the module's services in the registry. It runs for
	// every module before any module boots.
	Register(reg *registry.Registry) error

	// Boot sets up routes and starts background work.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases resources during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for modules to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

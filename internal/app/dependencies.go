package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/nfrund/profileview/internal/audit"
	"github.com/nfrund/profileview/internal/config"
	"github.com/nfrund/profileview/internal/credential"
	"github.com/nfrund/profileview/internal/logging"
	"github.com/nfrund/profileview/internal/profileapi"
	"github.com/nfrund/profileview/internal/pubsub"
	"github.com/nfrund/profileview/internal/rendering"
)

// Dependencies holds the core services that are required by the application's modules.
// It is resolved from the injector once, at startup.
type Dependencies struct {
	Config      *config.Config
	Logger      *slog.Logger
	Bus         *pubsub.WatermillBridge
	Renderer    rendering.Renderer
	Profiles    *profileapi.Client
	Credentials credential.Source
	Audit       *audit.Logger
}

// NewInjector registers every core service. Services are built lazily the
// first time they are invoked.
func NewInjector(cfg *config.Config) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, provideLogger)
	do.Provide(i, provideTracing)
	do.Provide(i, provideBus)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideProfileClient)
	do.Provide(i, provideCredentials)
	do.Provide(i, provideAudit)

	return i
}

// Resolve builds the Dependencies struct from the injector.
func Resolve(i do.Injector) (Dependencies, error) {
	var (
		deps Dependencies
		err  error
	)
	if deps.Config, err = do.Invoke[*config.Config](i); err != nil {
		return deps, fmt.Errorf("resolve config: %w", err)
	}
	if deps.Logger, err = do.Invoke[*slog.Logger](i); err != nil {
		return deps, fmt.Errorf("resolve logger: %w", err)
	}
	if deps.Bus, err = do.Invoke[*pubsub.WatermillBridge](i); err != nil {
		return deps, fmt.Errorf("resolve event bus: %w", err)
	}
	if deps.Renderer, err = do.Invoke[rendering.Renderer](i); err != nil {
		return deps, fmt.Errorf("resolve renderer: %w", err)
	}
	if deps.Profiles, err = do.Invoke[*profileapi.Client](i); err != nil {
		return deps, fmt.Errorf("resolve profile client: %w", err)
	}
	if deps.Credentials, err = do.Invoke[credential.Source](i); err != nil {
		return deps, fmt.Errorf("resolve credential source: %w", err)
	}
	if deps.Audit, err = do.Invoke[*audit.Logger](i); err != nil {
		return deps, fmt.Errorf("resolve audit logger: %w", err)
	}
	return deps, nil
}

func provideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return logging.New(cfg.LogFormat, cfg.LogLevel), nil
}

// provideTracing is shut down with the injector, flushing pending spans.
func provideTracing(i do.Injector) (*pubsub.Tracing, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return pubsub.NewTracing(context.Background(), pubsub.TracingConfig{
		Enabled:     cfg.TracingEnabled,
		ServiceName: cfg.TracingServiceName,
		ZipkinURL:   cfg.TracingZipkinURL,
	})
}

func provideBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	tracing, err := do.Invoke[*pubsub.Tracing](i)
	if err != nil {
		return nil, err
	}
	if !do.MustInvoke[*config.Config](i).TracingEnabled {
		return pubsub.NewWatermillBridge(), nil
	}
	return pubsub.NewWatermillBridge(pubsub.WithTracer(tracing.Tracer())), nil
}

func provideRenderer(i do.Injector) (rendering.Renderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideProfileClient(i do.Injector) (*profileapi.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return profileapi.New(cfg.ProfileAPIURL, cfg.ProfileAPITimeout), nil
}

func provideCredentials(i do.Injector) (credential.Source, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return credential.NewCookieSource(cfg.CredentialCookie), nil
}

func provideAudit(i do.Injector) (*audit.Logger, error) {
	return audit.NewLogger(do.MustInvoke[*slog.Logger](i)), nil
}

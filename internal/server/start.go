package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.Addr)
		if err := s.E.Start(s.Cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.Shutdown(context.Background())
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting requests, shuts modules down and closes the
// event bus.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	err := s.E.Shutdown(ctx)

	for _, m := range s.modules {
		if mErr := m.Shutdown(ctx); mErr != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", mErr)
		}
	}

	s.cancel()
	if bErr := s.deps.Bus.Close(); bErr != nil {
		slog.Error("Failed to close event bus", "error", bErr)
	}
	s.injector.Shutdown()
	return err
}

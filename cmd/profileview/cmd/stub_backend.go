package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/nfrund/profileview/internal/config"
	"github.com/nfrund/profileview/internal/logging"
	"github.com/nfrund/profileview/internal/stubbackend"
)

var (
	stubAddr string
	stubFile string
)

var stubBackendCmd = &cobra.Command{
	Use:   "stub-backend",
	Short: "Run a development stand-in for the profile backend",
	Long: `Serve a profile JSON file at ` + stubbackend.ProfilePath + ` to holders of a token
signed with STUB_JWT_SECRET. The file is re-read on every request.`,
	RunE: runStubBackend,
}

func runStubBackend(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadStub()
	if err != nil {
		return err
	}
	if stubAddr != "" {
		cfg.Addr = stubAddr
	}
	if stubFile != "" {
		cfg.ProfileFile = stubFile
	}
	logging.New("text", "debug")

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: stubbackend.NewRouter(stubbackend.Options{
			Fs:                afero.NewOsFs(),
			ProfileFile:       cfg.ProfileFile,
			JWTSecret:         []byte(cfg.JWTSecret),
			AllowedOrigins:    cfg.AllowedOrigins,
			RequestsPerMinute: cfg.RequestsPerMinute,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting stub backend", "addr", cfg.Addr, "file", cfg.ProfileFile)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func init() {
	stubBackendCmd.Flags().StringVar(&stubAddr, "addr", "", "Listen address (defaults to $STUB_ADDR or :9090)")
	stubBackendCmd.Flags().StringVar(&stubFile, "file", "", "Profile JSON file (defaults to $STUB_PROFILE_FILE or profile.json)")
	rootCmd.AddCommand(stubBackendCmd)
}

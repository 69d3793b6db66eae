// Package audit records profile view outcomes in the structured log.
package audit

import (
	"context"
	"log/slog"

	"github.com/nfrund/profileview/internal/pubsub"
)

// Logger writes every ViewOutcome it receives to a slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates an audit Logger. A nil logger uses slog.Default.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger.With("component", "audit")}
}

// Start subscribes to profile view outcomes until ctx is cancelled.
func (l *Logger) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, pubsub.ProfileViewOutcome, l.Record)
}

// Record logs a single outcome. Failures are logged at warn level.
func (l *Logger) Record(ctx context.Context, v pubsub.ViewOutcome) error {
	level := slog.LevelInfo
	switch v.Outcome {
	case pubsub.OutcomeFailed, pubsub.OutcomeSessionExpired:
		level = slog.LevelWarn
	}

	l.logger.LogAttrs(ctx, level, "profile view",
		slog.String("request_id", v.RequestID),
		slog.String("outcome", string(v.Outcome)),
		slog.Int("status", v.Status),
		slog.String("message", v.Message),
		slog.Time("at", v.At),
	)
	return nil
}

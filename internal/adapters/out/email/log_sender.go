package email

import (
	"context"
	"log/slog"
)

// ResolverFunc adapts a function to the AddressResolver interface.
type ResolverFunc func(ctx context.Context, accountID string) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, accountID string) (string, error) {
	return f(ctx, accountID)
}

// LogSender writes mail to the log instead of a relay. Used when no SMTP
// host is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send logs the message and reports success.
func (s *LogSender) Send(_ context.Context, recipient, subject, _ string) error {
	s.logger.Info("email (log only)", "recipient", recipient, "subject", subject)
	return nil
}

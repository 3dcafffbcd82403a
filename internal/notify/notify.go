// Package notify is the outgoing notification sink. The current
// implementation writes log lines where a mailer integration would send
// email; callers never see a notification failure.
package notify

import (
	"context"
	"log/slog"
	"os"
)

type Notifier interface {
	// LeadCreated signals that a new appointment request arrived.
	LeadCreated(ctx context.Context, name, email string)
	// LeadConfirmed signals that a request was confirmed.
	LeadConfirmed(ctx context.Context, email string)
}

// LogNotifier logs notifications instead of sending email.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) LeadCreated(ctx context.Context, name, email string) {
	n.logger.InfoContext(ctx, "[EMAIL] nouvelle demande",
		slog.String("name", name),
		slog.String("email", email),
	)
}

func (n *LogNotifier) LeadConfirmed(ctx context.Context, email string) {
	n.logger.InfoContext(ctx, "[EMAIL] confirmation envoyée",
		slog.String("email", email),
	)
}

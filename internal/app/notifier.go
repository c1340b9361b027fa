package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lessonbell-backend/internal/adapter/notifier/email"
	"github.com/heartmarshall/lessonbell-backend/internal/adapter/notifier/logsink"
	"github.com/heartmarshall/lessonbell-backend/internal/config"
)

// Notifier delivers one reminder to a teacher.
type Notifier interface {
	Send(ctx context.Context, email, subject string, model map[string]any) error
}

// logSinkKeep is how many recent reminders the log driver retains.
const logSinkKeep = 100

// NewNotifier builds the configured reminder delivery driver.
func NewNotifier(cfg config.NotifierConfig, logger *slog.Logger) (Notifier, error) {
	switch cfg.Driver {
	case config.NotifierSMTP:
		n, err := email.NewNotifier(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("smtp notifier: %w", err)
		}
		return n, nil
	case config.NotifierLog:
		return logsink.NewNotifier(logger, logSinkKeep), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver %q", cfg.Driver)
	}
}

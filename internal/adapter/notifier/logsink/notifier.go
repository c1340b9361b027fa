// Package logsink is a notifier that writes reminders to the log instead of
// delivering them. It backs local development and the memory driver.
package logsink

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
)

// Message is one reminder handed to the notifier.
type Message struct {
	Email   string
	Subject string
	Model   map[string]any
}

// Notifier logs every reminder and keeps the most recent ones in memory.
type Notifier struct {
	log  *slog.Logger
	keep int

	mu   sync.Mutex
	sent []Message
}

// NewNotifier creates a log notifier that remembers up to keep messages.
func NewNotifier(logger *slog.Logger, keep int) *Notifier {
	return &Notifier{
		log:  logger.With("adapter", "log_notifier"),
		keep: keep,
	}
}

// Send never fails.
func (n *Notifier) Send(ctx context.Context, email, subject string, model map[string]any) error {
	attrs := make([]any, 0, len(model))
	for _, k := range slices.Sorted(maps.Keys(model)) {
		attrs = append(attrs, slog.Any(k, model[k]))
	}
	n.log.InfoContext(ctx, "reminder",
		slog.String("to", email),
		slog.String("subject", subject),
		slog.Group("model", attrs...),
	)

	if n.keep <= 0 {
		return nil
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, Message{Email: email, Subject: subject, Model: maps.Clone(model)})
	if len(n.sent) > n.keep {
		n.sent = slices.Delete(n.sent, 0, len(n.sent)-n.keep)
	}
	return nil
}

// Sent returns the remembered messages, oldest first.
func (n *Notifier) Sent() []Message {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.sent)
}

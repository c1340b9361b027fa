package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Purge drops dispatch records of lessons that started more than
// RetentionMargin before now. Such lessons can no longer fall into a scan
// window, so their records are dead weight.
func (s *Scheduler) Purge(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.cfg.RetentionMargin)

	n, err := s.dispatches.PurgeStartedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge dispatch records: %w", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "dispatch records purged",
			slog.Int("count", n),
			slog.Time("cutoff", cutoff),
		)
	}
	return n, nil
}

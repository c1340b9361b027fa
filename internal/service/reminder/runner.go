package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Runner drives a Scheduler on cron: a tick every Interval and a purge on
// its own schedule. Overlapping runs of the same job are skipped.
type Runner struct {
	cron  *cron.Cron
	sched *Scheduler
	log   *slog.Logger
	now   func() time.Time
}

// NewRunner registers the tick and purge jobs. purgeSpec is a standard cron
// expression or descriptor such as "@every 10m".
func NewRunner(log *slog.Logger, sched *Scheduler, purgeSpec string) (*Runner, error) {
	log = log.With("component", "reminder_runner")
	cl := cronLogger{log: log}

	r := &Runner{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		sched: sched,
		log:   log,
		now:   time.Now,
	}

	tickSpec := fmt.Sprintf("@every %s", sched.cfg.Interval)
	if _, err := r.cron.AddFunc(tickSpec, r.tick); err != nil {
		return nil, fmt.Errorf("schedule tick %q: %w", tickSpec, err)
	}
	if _, err := r.cron.AddFunc(purgeSpec, r.purge); err != nil {
		return nil, fmt.Errorf("schedule purge %q: %w", purgeSpec, err)
	}
	return r, nil
}

// Start runs the jobs in the background.
func (r *Runner) Start() {
	r.cron.Start()
	r.log.Info("reminder scheduler started",
		slog.Duration("interval", r.sched.cfg.Interval),
		slog.Int("thresholds", len(r.sched.cfg.Thresholds)),
	)
}

// Stop stops scheduling and waits for a running tick to finish or ctx to end.
func (r *Runner) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	select {
	case <-done.Done():
		r.log.Info("reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("reminder scheduler stop: %w", ctx.Err())
	}
}

func (r *Runner) tick() {
	r.sched.Tick(context.Background(), r.now())
}

func (r *Runner) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if _, err := r.sched.Purge(ctx, r.now()); err != nil {
		r.log.Error("purge dispatch records", slog.String("error", err.Error()))
	}
}

// cronLogger routes cron's own logging to slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// Package reminder sends each lesson's reminders exactly once per threshold.
//
// A tick scans, for every threshold T, the lessons starting in
// (previous tick + T, now + T]. Each candidate is claimed through an atomic
// test-and-set on its dispatch record before anything is sent, so overlapping
// windows, jittered ticks and concurrent schedulers never double-fire.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

type lessonSource interface {
	FindStartingBetween(ctx context.Context, date time.Time, from, to domain.TimeOfDay) ([]domain.Lesson, error)
}

type teacherRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)
}

type dispatchLog interface {
	TryMark(ctx context.Context, rec domain.DispatchRecord) (bool, error)
	PurgeStartedBefore(ctx context.Context, cutoff time.Time) (int, error)
}

type notifier interface {
	Send(ctx context.Context, email, subject string, model map[string]any) error
}

type notificationSink interface {
	Create(teacherID uuid.UUID, message string)
}

// Scheduler finds due lessons and dispatches their reminders.
type Scheduler struct {
	cfg        Config
	lessons    lessonSource
	teachers   teacherRepo
	dispatches dispatchLog
	notifier   notifier
	sink       notificationSink
	metrics    *Metrics
	log        *slog.Logger

	mu       sync.Mutex
	lastTick time.Time
	// lastRun is the wall-clock completion of the latest tick, in unix nanos.
	lastRun atomic.Int64
}

// NewScheduler creates a scheduler. metrics may be nil.
func NewScheduler(
	log *slog.Logger,
	cfg Config,
	lessons lessonSource,
	teachers teacherRepo,
	dispatches dispatchLog,
	notifier notifier,
	sink notificationSink,
	metrics *Metrics,
) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("reminder config: %w", err)
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Scheduler{
		cfg:        cfg,
		lessons:    lessons,
		teachers:   teachers,
		dispatches: dispatches,
		notifier:   notifier,
		sink:       sink,
		metrics:    metrics,
		log:        log.With("service", "reminder"),
	}, nil
}

// TickReport summarises one tick.
type TickReport struct {
	WindowStart time.Time
	WindowEnd   time.Time
	Candidates  int
	Dispatched  int
	Duplicates  int
	Failed      int
}

type tickCounters struct {
	candidates atomic.Int64
	dispatched atomic.Int64
	duplicates atomic.Int64
	failed     atomic.Int64
}

// Tick runs one scan at now. It never fails: lookup and delivery errors are
// logged and counted, and the remaining candidates are still processed.
// Ticks are serialized and run to completion even if ctx is cancelled.
func (s *Scheduler) Tick(ctx context.Context, now time.Time) TickReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := time.Now()
	defer func() {
		s.metrics.TickDuration.Observe(time.Since(started).Seconds())
		s.lastRun.Store(time.Now().UnixNano())
	}()

	ctx = context.WithoutCancel(ctx)

	lower := s.windowStart(now)
	s.lastTick = now

	var (
		c tickCounters
		g errgroup.Group
	)
	cache := newTeacherCache(s.teachers)
	g.SetLimit(s.cfg.Concurrency)

	for _, threshold := range s.cfg.Thresholds {
		from, to := lower.Add(threshold.Duration()), now.Add(threshold.Duration())

		due, err := s.startingIn(ctx, from, to)
		if err != nil {
			s.log.ErrorContext(ctx, "find due lessons",
				slog.String("threshold", threshold.String()),
				slog.String("error", err.Error()),
			)
			continue
		}

		for i := range due {
			lesson := due[i]
			c.candidates.Add(1)
			g.Go(func() error {
				s.dispatch(ctx, cache, &c, lesson, threshold, now)
				return nil
			})
		}
	}
	_ = g.Wait()

	report := TickReport{
		WindowStart: lower,
		WindowEnd:   now,
		Candidates:  int(c.candidates.Load()),
		Dispatched:  int(c.dispatched.Load()),
		Duplicates:  int(c.duplicates.Load()),
		Failed:      int(c.failed.Load()),
	}
	if report.Candidates > 0 {
		s.log.InfoContext(ctx, "reminder tick",
			slog.Int("candidates", report.Candidates),
			slog.Int("dispatched", report.Dispatched),
			slog.Int("duplicates", report.Duplicates),
			slog.Int("failed", report.Failed),
		)
	}
	return report
}

// Ping reports a stalled scheduler: it fails once no tick has completed for
// three intervals. It passes before the first tick.
func (s *Scheduler) Ping(context.Context) error {
	last := s.lastRun.Load()
	if last == 0 {
		return nil
	}
	if age := time.Since(time.Unix(0, last)); age > 3*s.cfg.Interval {
		return fmt.Errorf("last reminder tick finished %s ago", age.Round(time.Second))
	}
	return nil
}

// windowStart returns the exclusive lower bound of this tick's scan. It picks
// up where the previous tick stopped, reaching back at most MaxLookback; the
// first tick covers one interval.
func (s *Scheduler) windowStart(now time.Time) time.Time {
	lower := now.Add(-s.cfg.Interval)
	if s.lastTick.IsZero() || !s.lastTick.Before(now) {
		return lower
	}
	lower = s.lastTick
	if floor := now.Add(-s.cfg.MaxLookback); lower.Before(floor) {
		lower = floor
	}
	return lower
}

// startingIn returns lessons whose start instant lies in (from, to] on the
// scheduler clock, splitting the range at midnight.
func (s *Scheduler) startingIn(ctx context.Context, from, to time.Time) ([]domain.Lesson, error) {
	loc := s.cfg.Location
	from, to = from.In(loc), to.In(loc)
	lastDate := domain.DateOf(to)

	var out []domain.Lesson
	for date := domain.DateOf(from); !date.After(lastDate); date = date.AddDate(0, 0, 1) {
		dayFrom, dayTo := domain.TimeOfDay(0), domain.EndOfDay
		if date.Equal(domain.DateOf(from)) {
			dayFrom = domain.TimeOfDayOf(from)
		}
		if date.Equal(lastDate) {
			dayTo = domain.TimeOfDayOf(to)
		}

		found, err := s.lessons.FindStartingBetween(ctx, date, dayFrom, dayTo)
		if err != nil {
			return nil, fmt.Errorf("find lessons starting on %s: %w", date.Format(domain.DateLayout), err)
		}
		for _, l := range found {
			at := l.StartsAt(loc)
			if at.After(from) && !at.After(to) {
				out = append(out, l)
			}
		}
	}
	return out, nil
}

package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// dispatch claims the (lesson, threshold) pair and, if this call won the
// claim, notifies the teacher. A claimed record is never released: delivery
// is attempted once.
func (s *Scheduler) dispatch(
	ctx context.Context,
	cache *teacherCache,
	c *tickCounters,
	lesson domain.Lesson,
	threshold domain.Threshold,
	now time.Time,
) {
	label := threshold.String()
	log := s.log.With(
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("threshold", label),
	)

	claimed, err := s.dispatches.TryMark(ctx, domain.DispatchRecord{
		DispatchKey:    domain.DispatchKey{LessonID: lesson.ID, Threshold: threshold},
		LessonStartsAt: lesson.StartsAt(s.cfg.Location),
		DispatchedAt:   now,
	})
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Deleted since the scan.
		log.DebugContext(ctx, "lesson gone before dispatch")
		return
	case err != nil:
		c.failed.Add(1)
		s.metrics.DeliveryFailures.WithLabelValues(label).Inc()
		log.ErrorContext(ctx, "mark reminder", slog.String("error", err.Error()))
		return
	case !claimed:
		c.duplicates.Add(1)
		s.metrics.Skipped.WithLabelValues(label).Inc()
		return
	}

	teacher, err := cache.get(ctx, lesson.TeacherID)
	if err != nil {
		c.failed.Add(1)
		s.metrics.DeliveryFailures.WithLabelValues(label).Inc()
		log.ErrorContext(ctx, "load teacher for reminder",
			slog.String("teacher_id", lesson.TeacherID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	minutes := threshold.Minutes()
	s.sink.Create(teacher.ID, fmt.Sprintf("You have a lesson on %s in %d minutes", lesson.Subject, minutes))

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.NotifyTimeout)
	defer cancel()

	err = s.notifier.Send(sendCtx, teacher.Email, fmt.Sprintf("Lesson in %d minutes", minutes), Payload(teacher, &lesson, minutes))
	if err != nil {
		c.failed.Add(1)
		s.metrics.DeliveryFailures.WithLabelValues(label).Inc()
		log.WarnContext(ctx, "reminder delivery failed",
			slog.String("teacher_id", teacher.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	c.dispatched.Add(1)
	s.metrics.Dispatched.WithLabelValues(label).Inc()
	log.InfoContext(ctx, "reminder sent", slog.String("teacher_id", teacher.ID.String()))
}

// Payload is the template model handed to the notifier.
func Payload(t *domain.Teacher, l *domain.Lesson, minutesLeft int) map[string]any {
	return map[string]any{
		"name":        t.Username,
		"subject":     l.Subject,
		"description": l.Description,
		"date":        l.Date.Format(domain.DateLayout),
		"time":        l.StartTime.String(),
		"classroom":   l.Classroom,
		"minutesLeft": minutesLeft,
	}
}

// teacherCache memoizes teacher lookups for the length of one tick.
type teacherCache struct {
	repo  teacherRepo
	group singleflight.Group

	mu   sync.Mutex
	byID map[uuid.UUID]*domain.Teacher
}

func newTeacherCache(repo teacherRepo) *teacherCache {
	return &teacherCache{repo: repo, byID: make(map[uuid.UUID]*domain.Teacher)}
}

func (c *teacherCache) get(ctx context.Context, id uuid.UUID) (*domain.Teacher, error) {
	c.mu.Lock()
	t, ok := c.byID[id]
	c.mu.Unlock()
	if ok {
		return t, nil
	}

	v, err, _ := c.group.Do(id.String(), func() (any, error) {
		c.mu.Lock()
		t, ok := c.byID[id]
		c.mu.Unlock()
		if ok {
			return t, nil
		}

		t, err := c.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.byID[id] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Teacher), nil
}

// Package memstore keeps lessons, teachers and dispatch records in process
// memory. It backs the "memory" database driver and serves as a fake in
// service tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// LessonRepo is an in-memory lesson store. Returned lessons are copies.
type LessonRepo struct {
	mu      sync.RWMutex
	lessons map[uuid.UUID]domain.Lesson
}

// NewLessonRepo creates an empty lesson store.
func NewLessonRepo() *LessonRepo {
	return &LessonRepo{lessons: make(map[uuid.UUID]domain.Lesson)}
}

func (r *LessonRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Lesson, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.lessons[id]
	if !ok {
		return nil, fmt.Errorf("lesson %s: %w", id, domain.ErrNotFound)
	}
	return &l, nil
}

func (r *LessonRepo) FindOverlapping(_ context.Context, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay) ([]domain.Lesson, error) {
	return r.collect(func(l *domain.Lesson) bool {
		return l.TeacherID == teacherID && l.Overlaps(date, start, end)
	}), nil
}

func (r *LessonRepo) FindByTeacherAndDateRange(_ context.Context, teacherID uuid.UUID, from, to time.Time) ([]domain.Lesson, error) {
	f := domain.LessonFilter{From: &from, To: &to}
	return r.collect(func(l *domain.Lesson) bool {
		return l.TeacherID == teacherID && f.Match(l)
	}), nil
}

func (r *LessonRepo) FindStartingBetween(_ context.Context, date time.Time, from, to domain.TimeOfDay) ([]domain.Lesson, error) {
	date = domain.DateOf(date)
	return r.collect(func(l *domain.Lesson) bool {
		return l.Date.Equal(date) && l.StartTime >= from && l.StartTime <= to
	}), nil
}

func (r *LessonRepo) FindByTeacher(_ context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error) {
	return r.collect(func(l *domain.Lesson) bool {
		return l.TeacherID == teacherID && filter.Match(l)
	}), nil
}

// Save inserts or replaces the lesson keyed by its id.
func (r *LessonRepo) Save(_ context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	if !l.StartTime.Before(l.EndTime) {
		return nil, fmt.Errorf("lesson %s: %w", l.ID, domain.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *l
	saved.Date = domain.DateOf(l.Date)
	if prev, ok := r.lessons[l.ID]; ok {
		saved.CreatedAt = prev.CreatedAt
	}
	r.lessons[l.ID] = saved
	return &saved, nil
}

func (r *LessonRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lessons[id]; !ok {
		return fmt.Errorf("lesson %s: %w", id, domain.ErrNotFound)
	}
	delete(r.lessons, id)
	return nil
}

// collect returns matching lessons ordered by (date, start time, id).
func (r *LessonRepo) collect(match func(*domain.Lesson) bool) []domain.Lesson {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Lesson, 0)
	for _, l := range r.lessons {
		if match(&l) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b domain.Lesson) int {
		if c := domain.CompareLessons(&a, &b); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return out
}

package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

type lessonFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
}

// DispatchLog is an in-memory set of dispatch records with atomic
// insert-if-absent. Records reference lessons in the given store.
type DispatchLog struct {
	lessons lessonFinder

	mu      sync.Mutex
	records map[domain.DispatchKey]domain.DispatchRecord
}

// NewDispatchLog creates an empty dispatch log over lessons.
func NewDispatchLog(lessons lessonFinder) *DispatchLog {
	return &DispatchLog{
		lessons: lessons,
		records: make(map[domain.DispatchKey]domain.DispatchRecord),
	}
}

// TryMark stores rec unless a record for the same key and lesson start is
// present, and reports whether it did. A record left from an earlier start
// of a rescheduled lesson is replaced. A lesson missing from the store
// surfaces as domain.ErrNotFound.
func (d *DispatchLog) TryMark(ctx context.Context, rec domain.DispatchRecord) (bool, error) {
	if _, err := d.lessons.FindByID(ctx, rec.LessonID); err != nil {
		return false, fmt.Errorf("reminder dispatch: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.records[rec.DispatchKey]; ok && prev.LessonStartsAt.Equal(rec.LessonStartsAt) {
		return false, nil
	}
	d.records[rec.DispatchKey] = rec
	return true, nil
}

func (d *DispatchLog) IsMarked(_ context.Context, key domain.DispatchKey) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.records[key]
	return ok, nil
}

// PurgeStartedBefore drops records whose lesson started before cutoff.
func (d *DispatchLog) PurgeStartedBefore(_ context.Context, cutoff time.Time) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := 0
	for k, rec := range d.records {
		if rec.LessonStartsAt.Before(cutoff) {
			delete(d.records, k)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored records.
func (d *DispatchLog) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.records)
}

package timetable

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// ValidateSlot checks that [start, end) on date is a well-formed interval
// free of the teacher's other lessons. excludeLessonID, when set, is ignored
// so a lesson never conflicts with itself on update.
//
// Returns *domain.ValidationError when end <= start and *domain.ConflictError
// listing the clashing lessons otherwise. Callers that persist the slot must
// run this inside the same transaction as the write, after LockSchedule.
func (s *Service) ValidateSlot(
	ctx context.Context,
	teacherID uuid.UUID,
	date time.Time,
	start, end domain.TimeOfDay,
	excludeLessonID *uuid.UUID,
) error {
	if !start.Before(end) {
		return domain.NewValidationError("end_time", "must be after start_time")
	}

	found, err := s.lessons.FindOverlapping(ctx, teacherID, domain.DateOf(date), start, end)
	if err != nil {
		return fmt.Errorf("find overlapping lessons: %w", err)
	}

	var clash []uuid.UUID
	for i := range found {
		l := &found[i]
		if excludeLessonID != nil && l.ID == *excludeLessonID {
			continue
		}
		// Stores may return a superset.
		if l.Overlaps(date, start, end) {
			clash = append(clash, l.ID)
		}
	}

	if len(clash) > 0 {
		return &domain.ConflictError{LessonIDs: clash}
	}
	return nil
}

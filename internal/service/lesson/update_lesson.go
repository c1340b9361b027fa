package lesson

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// UpdateLesson overwrites all mutable fields after re-checking the new slot
// against the teacher's other lessons.
func (s *Service) UpdateLesson(ctx context.Context, input UpdateLessonInput) (*domain.Lesson, error) {
	input.LessonFields = input.LessonFields.Normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Lesson
	err := s.withOwnedLesson(ctx, input.LessonID, input.ActorID, func(ctx context.Context, l *domain.Lesson) error {
		f := input.LessonFields
		if err := s.slots.ValidateSlot(ctx, l.TeacherID, f.Date, f.StartTime, f.EndTime, &l.ID); err != nil {
			return err
		}

		l.Apply(f)
		l.UpdatedAt = time.Now().UTC()

		var err error
		saved, err = s.lessons.Save(ctx, l)
		if err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lesson updated", "lesson_id", saved.ID.String())
	return saved, nil
}

package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// DeleteLesson removes the lesson. Reminders not yet sent for it never fire:
// the scheduler stops seeing the lesson on its next tick.
func (s *Service) DeleteLesson(ctx context.Context, lessonID, actorID uuid.UUID) error {
	err := s.withOwnedLesson(ctx, lessonID, actorID, func(ctx context.Context, _ *domain.Lesson) error {
		if err := s.lessons.DeleteByID(ctx, lessonID); err != nil {
			return fmt.Errorf("delete lesson: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "lesson deleted", "lesson_id", lessonID.String())
	return nil
}

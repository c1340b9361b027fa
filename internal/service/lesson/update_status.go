package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// UpdateStatus sets the lesson's status. Any status may follow any other.
// Date and time are untouched so no conflict check runs.
func (s *Service) UpdateStatus(
	ctx context.Context,
	lessonID, actorID uuid.UUID,
	status domain.LessonStatus,
) (*domain.Lesson, error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown lesson status")
	}

	var saved *domain.Lesson
	err := s.withOwnedLesson(ctx, lessonID, actorID, func(ctx context.Context, l *domain.Lesson) error {
		from := l.Status
		l.Status = status
		l.UpdatedAt = time.Now().UTC()

		var err error
		saved, err = s.lessons.Save(ctx, l)
		if err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}

		s.log.InfoContext(ctx, "lesson status changed",
			slog.String("lesson_id", l.ID.String()),
			slog.String("from", from.String()),
			slog.String("to", status.String()),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

package timetable

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// CreateLesson validates input and books the lesson. The conflict check and
// the insert run in one transaction holding the teacher's schedule lock, so
// two concurrent bookings cannot both pass against a stale read.
func (s *Service) CreateLesson(ctx context.Context, input CreateLessonInput) (*domain.Lesson, error) {
	input.LessonFields = input.LessonFields.Normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.teachers.GetByID(ctx, input.TeacherID); err != nil {
		return nil, fmt.Errorf("get teacher: %w", err)
	}

	status := domain.LessonStatusScheduled
	if input.Status != nil {
		status = *input.Status
	}

	now := time.Now().UTC()
	lesson := &domain.Lesson{
		ID:        uuid.New(),
		TeacherID: input.TeacherID,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	lesson.Apply(input.LessonFields)

	var saved *domain.Lesson
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tx.LockSchedule(ctx, lesson.TeacherID); err != nil {
			return err
		}
		if err := s.ValidateSlot(ctx, lesson.TeacherID, lesson.Date, lesson.StartTime, lesson.EndTime, nil); err != nil {
			return err
		}

		var err error
		saved, err = s.lessons.Save(ctx, lesson)
		if err != nil {
			return fmt.Errorf("save lesson: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "lesson created",
		slog.String("teacher_id", saved.TeacherID.String()),
		slog.String("lesson_id", saved.ID.String()),
		slog.String("date", saved.Date.Format(domain.DateLayout)),
		slog.String("start", saved.StartTime.String()),
	)

	return saved, nil
}

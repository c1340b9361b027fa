// Package lesson implements the lifecycle of a single booked lesson:
// status changes, full updates and deletion, each gated by ownership.
package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

type lessonRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	Save(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

type slotValidator interface {
	ValidateSlot(ctx context.Context, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay, excludeLessonID *uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockSchedule(ctx context.Context, teacherID uuid.UUID) error
}

// Service mutates existing lessons.
type Service struct {
	lessons lessonRepo
	slots   slotValidator
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new lesson lifecycle service.
func NewService(
	log *slog.Logger,
	lessons lessonRepo,
	slots slotValidator,
	tx txManager,
) *Service {
	return &Service{
		lessons: lessons,
		slots:   slots,
		tx:      tx,
		log:     log.With("service", "lesson"),
	}
}

// withOwnedLesson loads the lesson, checks that actorID owns it and runs fn
// inside a transaction holding the owner's schedule lock. fn receives a copy
// re-read under the lock.
func (s *Service) withOwnedLesson(
	ctx context.Context,
	lessonID, actorID uuid.UUID,
	fn func(ctx context.Context, l *domain.Lesson) error,
) error {
	current, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("find lesson: %w", err)
	}
	if err := domain.AuthorizeLesson(current, actorID); err != nil {
		return err
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tx.LockSchedule(ctx, current.TeacherID); err != nil {
			return err
		}
		locked, err := s.lessons.FindByID(ctx, lessonID)
		if err != nil {
			return fmt.Errorf("find lesson: %w", err)
		}
		return fn(ctx, locked)
	})
}

// Package notification exposes a teacher's in-app reminder messages.
package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"github.com/heartmarshall/lessonbell-backend/pkg/ctxutil"
)

type store interface {
	Get(teacherID uuid.UUID) []string
	Clear(teacherID uuid.UUID)
}

// Service reads and clears the calling teacher's mailbox.
type Service struct {
	sink store
	log  *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, sink store) *Service {
	return &Service{
		sink: sink,
		log:  log.With("service", "notification"),
	}
}

// List returns the caller's pending messages, oldest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	teacherID, ok := ctxutil.TeacherIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.sink.Get(teacherID), nil
}

// Clear removes all of the caller's messages.
func (s *Service) Clear(ctx context.Context) error {
	teacherID, ok := ctxutil.TeacherIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.sink.Clear(teacherID)
	s.log.DebugContext(ctx, "notifications cleared", slog.String("teacher_id", teacherID.String()))
	return nil
}

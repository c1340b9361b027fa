// Package timetable validates and queries a teacher's lesson bookings.
package timetable

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

type lessonRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	FindOverlapping(ctx context.Context, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay) ([]domain.Lesson, error)
	FindByTeacherAndDateRange(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]domain.Lesson, error)
	FindByTeacher(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error)
	Save(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
}

type teacherRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	LockSchedule(ctx context.Context, teacherID uuid.UUID) error
}

// Options tune query windows. Zero values take defaults.
type Options struct {
	// Location is the clock every lesson date and time is read on.
	Location *time.Location
	// UpcomingWindow is how far ahead LessonsStartingSoon looks.
	UpcomingWindow time.Duration
}

const DefaultUpcomingWindow = 30 * time.Minute

// Service owns conflict detection and timetable queries.
type Service struct {
	lessons  lessonRepo
	teachers teacherRepo
	tx       txManager
	log      *slog.Logger
	loc      *time.Location
	upcoming time.Duration
}

// NewService creates a new timetable service.
func NewService(
	log *slog.Logger,
	lessons lessonRepo,
	teachers teacherRepo,
	tx txManager,
	opts Options,
) *Service {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.UpcomingWindow <= 0 {
		opts.UpcomingWindow = DefaultUpcomingWindow
	}
	return &Service{
		lessons:  lessons,
		teachers: teachers,
		tx:       tx,
		log:      log.With("service", "timetable"),
		loc:      opts.Location,
		upcoming: opts.UpcomingWindow,
	}
}

// Location returns the clock lessons are scheduled on.
func (s *Service) Location() *time.Location { return s.loc }

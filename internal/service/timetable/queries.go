package timetable

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// WeeklyTimetable returns the teacher's lessons dated within
// [weekStart, weekStart+6 days], ordered by (date, start time).
func (s *Service) WeeklyTimetable(ctx context.Context, teacherID uuid.UUID, weekStart time.Time) ([]domain.Lesson, error) {
	from := domain.DateOf(weekStart)
	to := from.AddDate(0, 0, 6)

	lessons, err := s.lessons.FindByTeacherAndDateRange(ctx, teacherID, from, to)
	if err != nil {
		return nil, fmt.Errorf("find weekly lessons: %w", err)
	}
	return lessons, nil
}

// LessonsStartingSoon returns the teacher's lessons on now's date whose start
// lies within [now, now+UpcomingWindow], read on the service clock. A lesson
// that started before now, even by seconds, is excluded; a window running
// past midnight stops at the end of the day.
func (s *Service) LessonsStartingSoon(ctx context.Context, teacherID uuid.UUID, now time.Time) ([]domain.Lesson, error) {
	local := now.In(s.loc)
	date := domain.DateOf(local)
	from := domain.TimeOfDayOf(local)
	to := from.Add(s.upcoming)
	if to > domain.EndOfDay {
		to = domain.EndOfDay
	}

	day, err := s.lessons.FindByTeacherAndDateRange(ctx, teacherID, date, date)
	if err != nil {
		return nil, fmt.Errorf("find lessons starting soon: %w", err)
	}

	out := make([]domain.Lesson, 0, len(day))
	for _, l := range day {
		if l.StartTime >= from && l.StartTime <= to {
			out = append(out, l)
		}
	}
	return out, nil
}

// GetLesson returns a lesson owned by actorID.
func (s *Service) GetLesson(ctx context.Context, lessonID, actorID uuid.UUID) (*domain.Lesson, error) {
	l, err := s.lessons.FindByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	if err := domain.AuthorizeLesson(l, actorID); err != nil {
		return nil, err
	}
	return l, nil
}

// ListLessons returns the teacher's lessons matching filter, ordered by
// (date, start time).
func (s *Service) ListLessons(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}

	lessons, err := s.lessons.FindByTeacher(ctx, teacherID, filter)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

package timetable

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
	"time"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	FindByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	FindOverlappingFunc           func(ctx context.Context, teacherID uuid.UUID, date time.Time, start domain.TimeOfDay, end domain.TimeOfDay) ([]domain.Lesson, error)
	FindByTeacherAndDateRangeFunc func(ctx context.Context, teacherID uuid.UUID, from time.Time, to time.Time) ([]domain.Lesson, error)
	FindByTeacherFunc             func(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error)
	SaveFunc                      func(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)

	calls struct {
		FindByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		FindOverlapping []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			Date      time.Time
			Start     domain.TimeOfDay
			End       domain.TimeOfDay
		}
		FindByTeacherAndDateRange []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			From      time.Time
			To        time.Time
		}
		FindByTeacher []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
			Filter    domain.LessonFilter
		}
		Save []struct {
			Ctx context.Context
			L   *domain.Lesson
		}
	}
	lockFindByID                  sync.RWMutex
	lockFindOverlapping           sync.RWMutex
	lockFindByTeacherAndDateRange sync.RWMutex
	lockFindByTeacher             sync.RWMutex
	lockSave                      sync.RWMutex
}

func (mock *lessonRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	if mock.FindByIDFunc == nil {
		panic("lessonRepoMock.FindByIDFunc: method is nil but lessonRepo.FindByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockFindByID.Lock()
	mock.calls.FindByID = append(mock.calls.FindByID, callInfo)
	mock.lockFindByID.Unlock()
	return mock.FindByIDFunc(ctx, id)
}

func (mock *lessonRepoMock) FindByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockFindByID.RLock()
	calls = mock.calls.FindByID
	mock.lockFindByID.RUnlock()
	return calls
}

func (mock *lessonRepoMock) FindOverlapping(ctx context.Context, teacherID uuid.UUID, date time.Time, start domain.TimeOfDay, end domain.TimeOfDay) ([]domain.Lesson, error) {
	if mock.FindOverlappingFunc == nil {
		panic("lessonRepoMock.FindOverlappingFunc: method is nil but lessonRepo.FindOverlapping was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		Date      time.Time
		Start     domain.TimeOfDay
		End       domain.TimeOfDay
	}{
		Ctx:       ctx,
		TeacherID: teacherID,
		Date:      date,
		Start:     start,
		End:       end,
	}
	mock.lockFindOverlapping.Lock()
	mock.calls.FindOverlapping = append(mock.calls.FindOverlapping, callInfo)
	mock.lockFindOverlapping.Unlock()
	return mock.FindOverlappingFunc(ctx, teacherID, date, start, end)
}

func (mock *lessonRepoMock) FindOverlappingCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	Date      time.Time
	Start     domain.TimeOfDay
	End       domain.TimeOfDay
} {
	var calls []struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		Date      time.Time
		Start     domain.TimeOfDay
		End       domain.TimeOfDay
	}
	mock.lockFindOverlapping.RLock()
	calls = mock.calls.FindOverlapping
	mock.lockFindOverlapping.RUnlock()
	return calls
}

func (mock *lessonRepoMock) FindByTeacherAndDateRange(ctx context.Context, teacherID uuid.UUID, from time.Time, to time.Time) ([]domain.Lesson, error) {
	if mock.FindByTeacherAndDateRangeFunc == nil {
		panic("lessonRepoMock.FindByTeacherAndDateRangeFunc: method is nil but lessonRepo.FindByTeacherAndDateRange was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		From      time.Time
		To        time.Time
	}{
		Ctx:       ctx,
		TeacherID: teacherID,
		From:      from,
		To:        to,
	}
	mock.lockFindByTeacherAndDateRange.Lock()
	mock.calls.FindByTeacherAndDateRange = append(mock.calls.FindByTeacherAndDateRange, callInfo)
	mock.lockFindByTeacherAndDateRange.Unlock()
	return mock.FindByTeacherAndDateRangeFunc(ctx, teacherID, from, to)
}

func (mock *lessonRepoMock) FindByTeacherAndDateRangeCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	From      time.Time
	To        time.Time
} {
	var calls []struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		From      time.Time
		To        time.Time
	}
	mock.lockFindByTeacherAndDateRange.RLock()
	calls = mock.calls.FindByTeacherAndDateRange
	mock.lockFindByTeacherAndDateRange.RUnlock()
	return calls
}

func (mock *lessonRepoMock) FindByTeacher(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error) {
	if mock.FindByTeacherFunc == nil {
		panic("lessonRepoMock.FindByTeacherFunc: method is nil but lessonRepo.FindByTeacher was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		Filter    domain.LessonFilter
	}{
		Ctx:       ctx,
		TeacherID: teacherID,
		Filter:    filter,
	}
	mock.lockFindByTeacher.Lock()
	mock.calls.FindByTeacher = append(mock.calls.FindByTeacher, callInfo)
	mock.lockFindByTeacher.Unlock()
	return mock.FindByTeacherFunc(ctx, teacherID, filter)
}

func (mock *lessonRepoMock) FindByTeacherCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
	Filter    domain.LessonFilter
} {
	var calls []struct {
		Ctx       context.Context
		TeacherID uuid.UUID
		Filter    domain.LessonFilter
	}
	mock.lockFindByTeacher.RLock()
	calls = mock.calls.FindByTeacher
	mock.lockFindByTeacher.RUnlock()
	return calls
}

func (mock *lessonRepoMock) Save(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	if mock.SaveFunc == nil {
		panic("lessonRepoMock.SaveFunc: method is nil but lessonRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   *domain.Lesson
	}{
		Ctx: ctx,
		L:   l,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, l)
}

func (mock *lessonRepoMock) SaveCalls() []struct {
	Ctx context.Context
	L   *domain.Lesson
} {
	var calls []struct {
		Ctx context.Context
		L   *domain.Lesson
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

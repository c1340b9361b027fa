package reminder

import (
	"context"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
	"time"
)

var _ lessonSource = &lessonSourceMock{}

type lessonSourceMock struct {
	FindStartingBetweenFunc func(ctx context.Context, date time.Time, from domain.TimeOfDay, to domain.TimeOfDay) ([]domain.Lesson, error)

	calls struct {
		FindStartingBetween []struct {
			Ctx  context.Context
			Date time.Time
			From domain.TimeOfDay
			To   domain.TimeOfDay
		}
	}
	lockFindStartingBetween sync.RWMutex
}

func (mock *lessonSourceMock) FindStartingBetween(ctx context.Context, date time.Time, from domain.TimeOfDay, to domain.TimeOfDay) ([]domain.Lesson, error) {
	if mock.FindStartingBetweenFunc == nil {
		panic("lessonSourceMock.FindStartingBetweenFunc: method is nil but lessonSource.FindStartingBetween was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Date time.Time
		From domain.TimeOfDay
		To   domain.TimeOfDay
	}{
		Ctx:  ctx,
		Date: date,
		From: from,
		To:   to,
	}
	mock.lockFindStartingBetween.Lock()
	mock.calls.FindStartingBetween = append(mock.calls.FindStartingBetween, callInfo)
	mock.lockFindStartingBetween.Unlock()
	return mock.FindStartingBetweenFunc(ctx, date, from, to)
}

func (mock *lessonSourceMock) FindStartingBetweenCalls() []struct {
	Ctx  context.Context
	Date time.Time
	From domain.TimeOfDay
	To   domain.TimeOfDay
} {
	var calls []struct {
		Ctx  context.Context
		Date time.Time
		From domain.TimeOfDay
		To   domain.TimeOfDay
	}
	mock.lockFindStartingBetween.RLock()
	calls = mock.calls.FindStartingBetween
	mock.lockFindStartingBetween.RUnlock()
	return calls
}

package timetable

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
)

var _ teacherRepo = &teacherRepoMock{}

type teacherRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Teacher, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *teacherRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error) {
	if mock.GetByIDFunc == nil {
		panic("teacherRepoMock.GetByIDFunc: method is nil but teacherRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *teacherRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

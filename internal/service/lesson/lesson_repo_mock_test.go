package lesson

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
)

var _ lessonRepo = &lessonRepoMock{}

type lessonRepoMock struct {
	FindByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Lesson, error)
	SaveFunc       func(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error)
	DeleteByIDFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		FindByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Save []struct {
			Ctx context.Context
			L   *domain.Lesson
		}
		DeleteByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockFindByID   sync.RWMutex
	lockSave       sync.RWMutex
	lockDeleteByID sync.RWMutex
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

func (mock *lessonRepoMock) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteByIDFunc == nil {
		panic("lessonRepoMock.DeleteByIDFunc: method is nil but lessonRepo.DeleteByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(ctx, id)
}

func (mock *lessonRepoMock) DeleteByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockDeleteByID.RLock()
	calls = mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}

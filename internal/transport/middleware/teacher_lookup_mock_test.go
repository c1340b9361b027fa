package middleware

import (
	"context"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
)

var _ teacherLookup = &teacherLookupMock{}

type teacherLookupMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.Teacher, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *teacherLookupMock) GetByUsername(ctx context.Context, username string) (*domain.Teacher, error) {
	if mock.GetByUsernameFunc == nil {
		panic("teacherLookupMock.GetByUsernameFunc: method is nil but teacherLookup.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{
		Ctx:      ctx,
		Username: username,
	}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *teacherLookupMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	var calls []struct {
		Ctx      context.Context
		Username string
	}
	mock.lockGetByUsername.RLock()
	calls = mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}

package timetable

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc      func(ctx context.Context, fn func(ctx context.Context) error) error
	LockScheduleFunc func(ctx context.Context, teacherID uuid.UUID) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
		LockSchedule []struct {
			Ctx       context.Context
			TeacherID uuid.UUID
		}
	}
	lockRunInTx      sync.RWMutex
	lockLockSchedule sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{
		Ctx: ctx,
		Fn:  fn,
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	var calls []struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}
	mock.lockRunInTx.RLock()
	calls = mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

func (mock *txManagerMock) LockSchedule(ctx context.Context, teacherID uuid.UUID) error {
	if mock.LockScheduleFunc == nil {
		panic("txManagerMock.LockScheduleFunc: method is nil but txManager.LockSchedule was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		TeacherID uuid.UUID
	}{
		Ctx:       ctx,
		TeacherID: teacherID,
	}
	mock.lockLockSchedule.Lock()
	mock.calls.LockSchedule = append(mock.calls.LockSchedule, callInfo)
	mock.lockLockSchedule.Unlock()
	return mock.LockScheduleFunc(ctx, teacherID)
}

func (mock *txManagerMock) LockScheduleCalls() []struct {
	Ctx       context.Context
	TeacherID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		TeacherID uuid.UUID
	}
	mock.lockLockSchedule.RLock()
	calls = mock.calls.LockSchedule
	mock.lockLockSchedule.RUnlock()
	return calls
}

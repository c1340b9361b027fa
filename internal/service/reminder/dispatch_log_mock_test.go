package reminder

import (
	"context"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
	"time"
)

var _ dispatchLog = &dispatchLogMock{}

type dispatchLogMock struct {
	TryMarkFunc            func(ctx context.Context, rec domain.DispatchRecord) (bool, error)
	PurgeStartedBeforeFunc func(ctx context.Context, cutoff time.Time) (int, error)

	calls struct {
		TryMark []struct {
			Ctx context.Context
			Rec domain.DispatchRecord
		}
		PurgeStartedBefore []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
	}
	lockTryMark            sync.RWMutex
	lockPurgeStartedBefore sync.RWMutex
}

func (mock *dispatchLogMock) TryMark(ctx context.Context, rec domain.DispatchRecord) (bool, error) {
	if mock.TryMarkFunc == nil {
		panic("dispatchLogMock.TryMarkFunc: method is nil but dispatchLog.TryMark was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.DispatchRecord
	}{
		Ctx: ctx,
		Rec: rec,
	}
	mock.lockTryMark.Lock()
	mock.calls.TryMark = append(mock.calls.TryMark, callInfo)
	mock.lockTryMark.Unlock()
	return mock.TryMarkFunc(ctx, rec)
}

func (mock *dispatchLogMock) TryMarkCalls() []struct {
	Ctx context.Context
	Rec domain.DispatchRecord
} {
	var calls []struct {
		Ctx context.Context
		Rec domain.DispatchRecord
	}
	mock.lockTryMark.RLock()
	calls = mock.calls.TryMark
	mock.lockTryMark.RUnlock()
	return calls
}

func (mock *dispatchLogMock) PurgeStartedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	if mock.PurgeStartedBeforeFunc == nil {
		panic("dispatchLogMock.PurgeStartedBeforeFunc: method is nil but dispatchLog.PurgeStartedBefore was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{
		Ctx:    ctx,
		Cutoff: cutoff,
	}
	mock.lockPurgeStartedBefore.Lock()
	mock.calls.PurgeStartedBefore = append(mock.calls.PurgeStartedBefore, callInfo)
	mock.lockPurgeStartedBefore.Unlock()
	return mock.PurgeStartedBeforeFunc(ctx, cutoff)
}

func (mock *dispatchLogMock) PurgeStartedBeforeCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	var calls []struct {
		Ctx    context.Context
		Cutoff time.Time
	}
	mock.lockPurgeStartedBefore.RLock()
	calls = mock.calls.PurgeStartedBefore
	mock.lockPurgeStartedBefore.RUnlock()
	return calls
}

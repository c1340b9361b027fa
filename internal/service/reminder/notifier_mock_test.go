package reminder

import (
	"context"
	"sync"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	SendFunc func(ctx context.Context, email string, subject string, model map[string]any) error

	calls struct {
		Send []struct {
			Ctx     context.Context
			Email   string
			Subject string
			Model   map[string]any
		}
	}
	lockSend sync.RWMutex
}

func (mock *notifierMock) Send(ctx context.Context, email string, subject string, model map[string]any) error {
	if mock.SendFunc == nil {
		panic("notifierMock.SendFunc: method is nil but notifier.Send was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Email   string
		Subject string
		Model   map[string]any
	}{
		Ctx:     ctx,
		Email:   email,
		Subject: subject,
		Model:   model,
	}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, email, subject, model)
}

func (mock *notifierMock) SendCalls() []struct {
	Ctx     context.Context
	Email   string
	Subject string
	Model   map[string]any
} {
	var calls []struct {
		Ctx     context.Context
		Email   string
		Subject string
		Model   map[string]any
	}
	mock.lockSend.RLock()
	calls = mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}

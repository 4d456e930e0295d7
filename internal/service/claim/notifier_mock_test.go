package claim

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ notifier = &notifierMock{}

type notifierMock struct {
	EnqueueFunc func(ctx context.Context, n domain.Notification) bool

	calls struct {
		Enqueue []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockEnqueue sync.RWMutex
}

func (mock *notifierMock) Enqueue(ctx context.Context, n domain.Notification) bool {
	if mock.EnqueueFunc == nil {
		panic("notifierMock.EnqueueFunc: method is nil but notifier.Enqueue was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockEnqueue.Lock()
	mock.calls.Enqueue = append(mock.calls.Enqueue, callInfo)
	mock.lockEnqueue.Unlock()
	return mock.EnqueueFunc(ctx, n)
}

func (mock *notifierMock) EnqueueCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		N   domain.Notification
	}
	mock.lockEnqueue.RLock()
	calls = mock.calls.Enqueue
	mock.lockEnqueue.RUnlock()
	return calls
}

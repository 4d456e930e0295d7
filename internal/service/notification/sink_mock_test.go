package notification

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ sink = &sinkMock{}

type sinkMock struct {
	InsertFunc func(ctx context.Context, n domain.Notification) (bool, error)

	calls struct {
		Insert []struct {
			Ctx context.Context
			N   domain.Notification
		}
	}
	lockInsert sync.RWMutex
}

func (mock *sinkMock) Insert(ctx context.Context, n domain.Notification) (bool, error) {
	if mock.InsertFunc == nil {
		panic("sinkMock.InsertFunc: method is nil but sink.Insert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   domain.Notification
	}{
		Ctx: ctx,
		N:   n,
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, n)
}

func (mock *sinkMock) InsertCalls() []struct {
	Ctx context.Context
	N   domain.Notification
} {
	var calls []struct {
		Ctx context.Context
		N   domain.Notification
	}
	mock.lockInsert.RLock()
	calls = mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

package match

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ activityLogger = &activityLoggerMock{}

type activityLoggerMock struct {
	LogFunc func(ctx context.Context, a domain.Activity) error

	calls struct {
		Log []struct {
			Ctx context.Context
			A   domain.Activity
		}
	}
	lockLog sync.RWMutex
}

func (mock *activityLoggerMock) Log(ctx context.Context, a domain.Activity) error {
	if mock.LogFunc == nil {
		panic("activityLoggerMock.LogFunc: method is nil but activityLogger.Log was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.Activity
	}{
		Ctx: ctx,
		A:   a,
	}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, a)
}

func (mock *activityLoggerMock) LogCalls() []struct {
	Ctx context.Context
	A   domain.Activity
} {
	var calls []struct {
		Ctx context.Context
		A   domain.Activity
	}
	mock.lockLog.RLock()
	calls = mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

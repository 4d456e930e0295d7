package match

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ settingsProvider = &settingsProviderMock{}

type settingsProviderMock struct {
	GetConfigFunc func(ctx context.Context) (domain.Settings, error)

	calls struct {
		GetConfig []struct {
			Ctx context.Context
		}
	}
	lockGetConfig sync.RWMutex
}

func (mock *settingsProviderMock) GetConfig(ctx context.Context) (domain.Settings, error) {
	if mock.GetConfigFunc == nil {
		panic("settingsProviderMock.GetConfigFunc: method is nil but settingsProvider.GetConfig was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetConfig.Lock()
	mock.calls.GetConfig = append(mock.calls.GetConfig, callInfo)
	mock.lockGetConfig.Unlock()
	return mock.GetConfigFunc(ctx)
}

func (mock *settingsProviderMock) GetConfigCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetConfig.RLock()
	calls = mock.calls.GetConfig
	mock.lockGetConfig.RUnlock()
	return calls
}

package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ settingsService = &settingsServiceMock{}

type settingsServiceMock struct {
	GetConfigFunc    func(ctx context.Context) (domain.Settings, error)
	UpdateConfigFunc func(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)

	calls struct {
		GetConfig []struct {
			Ctx context.Context
		}
		UpdateConfig []struct {
			Ctx    context.Context
			Update domain.SettingsUpdate
		}
	}
	lockGetConfig    sync.RWMutex
	lockUpdateConfig sync.RWMutex
}

func (mock *settingsServiceMock) GetConfig(ctx context.Context) (domain.Settings, error) {
	if mock.GetConfigFunc == nil {
		panic("settingsServiceMock.GetConfigFunc: method is nil but settingsService.GetConfig was just called")
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

func (mock *settingsServiceMock) GetConfigCalls() []struct {
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

func (mock *settingsServiceMock) UpdateConfig(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	if mock.UpdateConfigFunc == nil {
		panic("settingsServiceMock.UpdateConfigFunc: method is nil but settingsService.UpdateConfig was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Update domain.SettingsUpdate
	}{
		Ctx:    ctx,
		Update: update,
	}
	mock.lockUpdateConfig.Lock()
	mock.calls.UpdateConfig = append(mock.calls.UpdateConfig, callInfo)
	mock.lockUpdateConfig.Unlock()
	return mock.UpdateConfigFunc(ctx, update)
}

func (mock *settingsServiceMock) UpdateConfigCalls() []struct {
	Ctx    context.Context
	Update domain.SettingsUpdate
} {
	var calls []struct {
		Ctx    context.Context
		Update domain.SettingsUpdate
	}
	mock.lockUpdateConfig.RLock()
	calls = mock.calls.UpdateConfig
	mock.lockUpdateConfig.RUnlock()
	return calls
}

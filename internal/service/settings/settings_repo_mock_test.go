package settings

import (
	"context"
	"sync"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetFunc          func(ctx context.Context) (domain.Settings, error)
	GetForUpdateFunc func(ctx context.Context) (domain.Settings, error)
	SaveFunc         func(ctx context.Context, s domain.Settings) error

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		GetForUpdate []struct {
			Ctx context.Context
		}
		Save []struct {
			Ctx context.Context
			S   domain.Settings
		}
	}
	lockGet          sync.RWMutex
	lockGetForUpdate sync.RWMutex
	lockSave         sync.RWMutex
}

func (mock *settingsRepoMock) Get(ctx context.Context) (domain.Settings, error) {
	if mock.GetFunc == nil {
		panic("settingsRepoMock.GetFunc: method is nil but settingsRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *settingsRepoMock) GetCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *settingsRepoMock) GetForUpdate(ctx context.Context) (domain.Settings, error) {
	if mock.GetForUpdateFunc == nil {
		panic("settingsRepoMock.GetForUpdateFunc: method is nil but settingsRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx)
}

func (mock *settingsRepoMock) GetForUpdateCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGetForUpdate.RLock()
	calls = mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *settingsRepoMock) Save(ctx context.Context, s domain.Settings) error {
	if mock.SaveFunc == nil {
		panic("settingsRepoMock.SaveFunc: method is nil but settingsRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Settings
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, s)
}

func (mock *settingsRepoMock) SaveCalls() []struct {
	Ctx context.Context
	S   domain.Settings
} {
	var calls []struct {
		Ctx context.Context
		S   domain.Settings
	}
	mock.lockSave.RLock()
	calls = mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

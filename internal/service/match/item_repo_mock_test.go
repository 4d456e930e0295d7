package match

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListAvailableByCategoryFunc func(ctx context.Context, category string) ([]domain.Item, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListAvailableByCategory []struct {
			Ctx      context.Context
			Category string
		}
	}
	lockGetByID                 sync.RWMutex
	lockListAvailableByCategory sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListAvailableByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	if mock.ListAvailableByCategoryFunc == nil {
		panic("itemRepoMock.ListAvailableByCategoryFunc: method is nil but itemRepo.ListAvailableByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category string
	}{
		Ctx:      ctx,
		Category: category,
	}
	mock.lockListAvailableByCategory.Lock()
	mock.calls.ListAvailableByCategory = append(mock.calls.ListAvailableByCategory, callInfo)
	mock.lockListAvailableByCategory.Unlock()
	return mock.ListAvailableByCategoryFunc(ctx, category)
}

func (mock *itemRepoMock) ListAvailableByCategoryCalls() []struct {
	Ctx      context.Context
	Category string
} {
	var calls []struct {
		Ctx      context.Context
		Category string
	}
	mock.lockListAvailableByCategory.RLock()
	calls = mock.calls.ListAvailableByCategory
	mock.lockListAvailableByCategory.RUnlock()
	return calls
}

package match

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.LostReport, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]domain.LostReport, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByCategory []struct {
			Ctx      context.Context
			Category string
		}
	}
	lockGetByID        sync.RWMutex
	lockListByCategory sync.RWMutex
}

func (mock *reportRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.LostReport, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
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

func (mock *reportRepoMock) GetByIDCalls() []struct {
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

func (mock *reportRepoMock) ListByCategory(ctx context.Context, category string) ([]domain.LostReport, error) {
	if mock.ListByCategoryFunc == nil {
		panic("reportRepoMock.ListByCategoryFunc: method is nil but reportRepo.ListByCategory was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Category string
	}{
		Ctx:      ctx,
		Category: category,
	}
	mock.lockListByCategory.Lock()
	mock.calls.ListByCategory = append(mock.calls.ListByCategory, callInfo)
	mock.lockListByCategory.Unlock()
	return mock.ListByCategoryFunc(ctx, category)
}

func (mock *reportRepoMock) ListByCategoryCalls() []struct {
	Ctx      context.Context
	Category string
} {
	var calls []struct {
		Ctx      context.Context
		Category string
	}
	mock.lockListByCategory.RLock()
	calls = mock.calls.ListByCategory
	mock.lockListByCategory.RUnlock()
	return calls
}

package claim

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, status domain.ItemStatus, claimedBy *uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStatus []struct {
			Ctx       context.Context
			ID        uuid.UUID
			Status    domain.ItemStatus
			ClaimedBy *uuid.UUID
		}
	}
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockUpdateStatus     sync.RWMutex
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

func (mock *itemRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("itemRepoMock.GetByIDForUpdateFunc: method is nil but itemRepo.GetByIDForUpdate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByIDForUpdate.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, callInfo)
	mock.lockGetByIDForUpdate.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDForUpdateCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetByIDForUpdate.RLock()
	calls = mock.calls.GetByIDForUpdate
	mock.lockGetByIDForUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, claimedBy *uuid.UUID) error {
	if mock.UpdateStatusFunc == nil {
		panic("itemRepoMock.UpdateStatusFunc: method is nil but itemRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		Status    domain.ItemStatus
		ClaimedBy *uuid.UUID
	}{
		Ctx:       ctx,
		ID:        id,
		Status:    status,
		ClaimedBy: claimedBy,
	}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, claimedBy)
}

func (mock *itemRepoMock) UpdateStatusCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	Status    domain.ItemStatus
	ClaimedBy *uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		ID        uuid.UUID
		Status    domain.ItemStatus
		ClaimedBy *uuid.UUID
	}
	mock.lockUpdateStatus.RLock()
	calls = mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

package claim

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

var _ claimRepo = &claimRepoMock{}

type claimRepoMock struct {
	CreateFunc           func(ctx context.Context, c domain.Claim) error
	UpdateFunc           func(ctx context.Context, c domain.Claim) error
	UpdateFraudFunc      func(ctx context.Context, id uuid.UUID, a domain.FraudAssessment) error
	SoftDeleteFunc       func(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListByItemFunc       func(ctx context.Context, itemID uuid.UUID) ([]domain.Claim, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Claim
		}
		Update []struct {
			Ctx context.Context
			C   domain.Claim
		}
		UpdateFraud []struct {
			Ctx context.Context
			ID  uuid.UUID
			A   domain.FraudAssessment
		}
		SoftDelete []struct {
			Ctx context.Context
			ID  uuid.UUID
			At  time.Time
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByIDForUpdate []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByItem []struct {
			Ctx    context.Context
			ItemID uuid.UUID
		}
	}
	lockCreate           sync.RWMutex
	lockUpdate           sync.RWMutex
	lockUpdateFraud      sync.RWMutex
	lockSoftDelete       sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetByIDForUpdate sync.RWMutex
	lockListByItem       sync.RWMutex
}

func (mock *claimRepoMock) Create(ctx context.Context, c domain.Claim) error {
	if mock.CreateFunc == nil {
		panic("claimRepoMock.CreateFunc: method is nil but claimRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Claim
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *claimRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Claim
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Claim
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *claimRepoMock) Update(ctx context.Context, c domain.Claim) error {
	if mock.UpdateFunc == nil {
		panic("claimRepoMock.UpdateFunc: method is nil but claimRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Claim
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, c)
}

func (mock *claimRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	C   domain.Claim
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Claim
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *claimRepoMock) UpdateFraud(ctx context.Context, id uuid.UUID, a domain.FraudAssessment) error {
	if mock.UpdateFraudFunc == nil {
		panic("claimRepoMock.UpdateFraudFunc: method is nil but claimRepo.UpdateFraud was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		A   domain.FraudAssessment
	}{
		Ctx: ctx,
		ID:  id,
		A:   a,
	}
	mock.lockUpdateFraud.Lock()
	mock.calls.UpdateFraud = append(mock.calls.UpdateFraud, callInfo)
	mock.lockUpdateFraud.Unlock()
	return mock.UpdateFraudFunc(ctx, id, a)
}

func (mock *claimRepoMock) UpdateFraudCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	A   domain.FraudAssessment
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		A   domain.FraudAssessment
	}
	mock.lockUpdateFraud.RLock()
	calls = mock.calls.UpdateFraud
	mock.lockUpdateFraud.RUnlock()
	return calls
}

func (mock *claimRepoMock) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	if mock.SoftDeleteFunc == nil {
		panic("claimRepoMock.SoftDeleteFunc: method is nil but claimRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}{
		Ctx: ctx,
		ID:  id,
		At:  at,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, id, at)
}

func (mock *claimRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
	At  time.Time
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
		At  time.Time
	}
	mock.lockSoftDelete.RLock()
	calls = mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}

func (mock *claimRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetByIDFunc == nil {
		panic("claimRepoMock.GetByIDFunc: method is nil but claimRepo.GetByID was just called")
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

func (mock *claimRepoMock) GetByIDCalls() []struct {
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

func (mock *claimRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("claimRepoMock.GetByIDForUpdateFunc: method is nil but claimRepo.GetByIDForUpdate was just called")
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

func (mock *claimRepoMock) GetByIDForUpdateCalls() []struct {
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

func (mock *claimRepoMock) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Claim, error) {
	if mock.ListByItemFunc == nil {
		panic("claimRepoMock.ListByItemFunc: method is nil but claimRepo.ListByItem was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}{
		Ctx:    ctx,
		ItemID: itemID,
	}
	mock.lockListByItem.Lock()
	mock.calls.ListByItem = append(mock.calls.ListByItem, callInfo)
	mock.lockListByItem.Unlock()
	return mock.ListByItemFunc(ctx, itemID)
}

func (mock *claimRepoMock) ListByItemCalls() []struct {
	Ctx    context.Context
	ItemID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		ItemID uuid.UUID
	}
	mock.lockListByItem.RLock()
	calls = mock.calls.ListByItem
	mock.lockListByItem.RUnlock()
	return calls
}

package claim

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/fraud"
)

var _ fraudScorer = &fraudScorerMock{}

type fraudScorerMock struct {
	CalculateFraudRiskScoreFunc func(ctx context.Context, userID uuid.UUID, activities []domain.Activity, claim fraud.ClaimContext) (domain.FraudAssessment, error)

	calls struct {
		CalculateFraudRiskScore []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			Activities []domain.Activity
			Claim      fraud.ClaimContext
		}
	}
	lockCalculateFraudRiskScore sync.RWMutex
}

func (mock *fraudScorerMock) CalculateFraudRiskScore(ctx context.Context, userID uuid.UUID, activities []domain.Activity, claim fraud.ClaimContext) (domain.FraudAssessment, error) {
	if mock.CalculateFraudRiskScoreFunc == nil {
		panic("fraudScorerMock.CalculateFraudRiskScoreFunc: method is nil but fraudScorer.CalculateFraudRiskScore was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Activities []domain.Activity
		Claim      fraud.ClaimContext
	}{
		Ctx:        ctx,
		UserID:     userID,
		Activities: activities,
		Claim:      claim,
	}
	mock.lockCalculateFraudRiskScore.Lock()
	mock.calls.CalculateFraudRiskScore = append(mock.calls.CalculateFraudRiskScore, callInfo)
	mock.lockCalculateFraudRiskScore.Unlock()
	return mock.CalculateFraudRiskScoreFunc(ctx, userID, activities, claim)
}

func (mock *fraudScorerMock) CalculateFraudRiskScoreCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	Activities []domain.Activity
	Claim      fraud.ClaimContext
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		Activities []domain.Activity
		Claim      fraud.ClaimContext
	}
	mock.lockCalculateFraudRiskScore.RLock()
	calls = mock.calls.CalculateFraudRiskScore
	mock.lockCalculateFraudRiskScore.RUnlock()
	return calls
}

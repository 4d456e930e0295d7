package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/claim"
)

var _ claimService = &claimServiceMock{}

type claimServiceMock struct {
	CreateClaimFunc             func(ctx context.Context, input claim.CreateClaimInput) (*claim.CreateClaimResult, error)
	GetClaimFunc                func(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	VerifyAnonymousTokenFunc    func(ctx context.Context, claimID uuid.UUID, token string) (*domain.Claim, error)
	UploadProofFunc             func(ctx context.Context, claimID uuid.UUID, userID uuid.UUID, docs []claim.ProofInput) (*domain.Claim, error)
	VerifyClaimFunc             func(ctx context.Context, claimID uuid.UUID, verifierID uuid.UUID, notes *string) (*domain.Claim, error)
	RejectClaimFunc             func(ctx context.Context, claimID uuid.UUID, verifierID uuid.UUID, reason string) (*domain.Claim, error)
	DeleteClaimFunc             func(ctx context.Context, claimID uuid.UUID, userID uuid.UUID, role domain.Role) error
	AddChallengeQuestionFunc    func(ctx context.Context, claimID uuid.UUID, question string, staffID uuid.UUID) (*domain.Challenge, error)
	SubmitChallengeResponseFunc func(ctx context.Context, claimID uuid.UUID, challengeID uuid.UUID, answer string, userID uuid.UUID) (*domain.Challenge, error)

	calls struct {
		CreateClaim []struct {
			Ctx   context.Context
			Input claim.CreateClaimInput
		}
		GetClaim []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		VerifyAnonymousToken []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
			Token   string
		}
		UploadProof []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
			UserID  uuid.UUID
			Docs    []claim.ProofInput
		}
		VerifyClaim []struct {
			Ctx        context.Context
			ClaimID    uuid.UUID
			VerifierID uuid.UUID
			Notes      *string
		}
		RejectClaim []struct {
			Ctx        context.Context
			ClaimID    uuid.UUID
			VerifierID uuid.UUID
			Reason     string
		}
		DeleteClaim []struct {
			Ctx     context.Context
			ClaimID uuid.UUID
			UserID  uuid.UUID
			Role    domain.Role
		}
		AddChallengeQuestion []struct {
			Ctx      context.Context
			ClaimID  uuid.UUID
			Question string
			StaffID  uuid.UUID
		}
		SubmitChallengeResponse []struct {
			Ctx         context.Context
			ClaimID     uuid.UUID
			ChallengeID uuid.UUID
			Answer      string
			UserID      uuid.UUID
		}
	}
	lockCreateClaim             sync.RWMutex
	lockGetClaim                sync.RWMutex
	lockVerifyAnonymousToken    sync.RWMutex
	lockUploadProof             sync.RWMutex
	lockVerifyClaim             sync.RWMutex
	lockRejectClaim             sync.RWMutex
	lockDeleteClaim             sync.RWMutex
	lockAddChallengeQuestion    sync.RWMutex
	lockSubmitChallengeResponse sync.RWMutex
}

func (mock *claimServiceMock) CreateClaim(ctx context.Context, input claim.CreateClaimInput) (*claim.CreateClaimResult, error) {
	if mock.CreateClaimFunc == nil {
		panic("claimServiceMock.CreateClaimFunc: method is nil but claimService.CreateClaim was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input claim.CreateClaimInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateClaim.Lock()
	mock.calls.CreateClaim = append(mock.calls.CreateClaim, callInfo)
	mock.lockCreateClaim.Unlock()
	return mock.CreateClaimFunc(ctx, input)
}

func (mock *claimServiceMock) CreateClaimCalls() []struct {
	Ctx   context.Context
	Input claim.CreateClaimInput
} {
	var calls []struct {
		Ctx   context.Context
		Input claim.CreateClaimInput
	}
	mock.lockCreateClaim.RLock()
	calls = mock.calls.CreateClaim
	mock.lockCreateClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	if mock.GetClaimFunc == nil {
		panic("claimServiceMock.GetClaimFunc: method is nil but claimService.GetClaim was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetClaim.Lock()
	mock.calls.GetClaim = append(mock.calls.GetClaim, callInfo)
	mock.lockGetClaim.Unlock()
	return mock.GetClaimFunc(ctx, id)
}

func (mock *claimServiceMock) GetClaimCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetClaim.RLock()
	calls = mock.calls.GetClaim
	mock.lockGetClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) VerifyAnonymousToken(ctx context.Context, claimID uuid.UUID, token string) (*domain.Claim, error) {
	if mock.VerifyAnonymousTokenFunc == nil {
		panic("claimServiceMock.VerifyAnonymousTokenFunc: method is nil but claimService.VerifyAnonymousToken was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		Token   string
	}{
		Ctx:     ctx,
		ClaimID: claimID,
		Token:   token,
	}
	mock.lockVerifyAnonymousToken.Lock()
	mock.calls.VerifyAnonymousToken = append(mock.calls.VerifyAnonymousToken, callInfo)
	mock.lockVerifyAnonymousToken.Unlock()
	return mock.VerifyAnonymousTokenFunc(ctx, claimID, token)
}

func (mock *claimServiceMock) VerifyAnonymousTokenCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
	Token   string
} {
	var calls []struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		Token   string
	}
	mock.lockVerifyAnonymousToken.RLock()
	calls = mock.calls.VerifyAnonymousToken
	mock.lockVerifyAnonymousToken.RUnlock()
	return calls
}

func (mock *claimServiceMock) UploadProof(ctx context.Context, claimID uuid.UUID, userID uuid.UUID, docs []claim.ProofInput) (*domain.Claim, error) {
	if mock.UploadProofFunc == nil {
		panic("claimServiceMock.UploadProofFunc: method is nil but claimService.UploadProof was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		UserID  uuid.UUID
		Docs    []claim.ProofInput
	}{
		Ctx:     ctx,
		ClaimID: claimID,
		UserID:  userID,
		Docs:    docs,
	}
	mock.lockUploadProof.Lock()
	mock.calls.UploadProof = append(mock.calls.UploadProof, callInfo)
	mock.lockUploadProof.Unlock()
	return mock.UploadProofFunc(ctx, claimID, userID, docs)
}

func (mock *claimServiceMock) UploadProofCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
	UserID  uuid.UUID
	Docs    []claim.ProofInput
} {
	var calls []struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		UserID  uuid.UUID
		Docs    []claim.ProofInput
	}
	mock.lockUploadProof.RLock()
	calls = mock.calls.UploadProof
	mock.lockUploadProof.RUnlock()
	return calls
}

func (mock *claimServiceMock) VerifyClaim(ctx context.Context, claimID uuid.UUID, verifierID uuid.UUID, notes *string) (*domain.Claim, error) {
	if mock.VerifyClaimFunc == nil {
		panic("claimServiceMock.VerifyClaimFunc: method is nil but claimService.VerifyClaim was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClaimID    uuid.UUID
		VerifierID uuid.UUID
		Notes      *string
	}{
		Ctx:        ctx,
		ClaimID:    claimID,
		VerifierID: verifierID,
		Notes:      notes,
	}
	mock.lockVerifyClaim.Lock()
	mock.calls.VerifyClaim = append(mock.calls.VerifyClaim, callInfo)
	mock.lockVerifyClaim.Unlock()
	return mock.VerifyClaimFunc(ctx, claimID, verifierID, notes)
}

func (mock *claimServiceMock) VerifyClaimCalls() []struct {
	Ctx        context.Context
	ClaimID    uuid.UUID
	VerifierID uuid.UUID
	Notes      *string
} {
	var calls []struct {
		Ctx        context.Context
		ClaimID    uuid.UUID
		VerifierID uuid.UUID
		Notes      *string
	}
	mock.lockVerifyClaim.RLock()
	calls = mock.calls.VerifyClaim
	mock.lockVerifyClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) RejectClaim(ctx context.Context, claimID uuid.UUID, verifierID uuid.UUID, reason string) (*domain.Claim, error) {
	if mock.RejectClaimFunc == nil {
		panic("claimServiceMock.RejectClaimFunc: method is nil but claimService.RejectClaim was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ClaimID    uuid.UUID
		VerifierID uuid.UUID
		Reason     string
	}{
		Ctx:        ctx,
		ClaimID:    claimID,
		VerifierID: verifierID,
		Reason:     reason,
	}
	mock.lockRejectClaim.Lock()
	mock.calls.RejectClaim = append(mock.calls.RejectClaim, callInfo)
	mock.lockRejectClaim.Unlock()
	return mock.RejectClaimFunc(ctx, claimID, verifierID, reason)
}

func (mock *claimServiceMock) RejectClaimCalls() []struct {
	Ctx        context.Context
	ClaimID    uuid.UUID
	VerifierID uuid.UUID
	Reason     string
} {
	var calls []struct {
		Ctx        context.Context
		ClaimID    uuid.UUID
		VerifierID uuid.UUID
		Reason     string
	}
	mock.lockRejectClaim.RLock()
	calls = mock.calls.RejectClaim
	mock.lockRejectClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) DeleteClaim(ctx context.Context, claimID uuid.UUID, userID uuid.UUID, role domain.Role) error {
	if mock.DeleteClaimFunc == nil {
		panic("claimServiceMock.DeleteClaimFunc: method is nil but claimService.DeleteClaim was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		UserID  uuid.UUID
		Role    domain.Role
	}{
		Ctx:     ctx,
		ClaimID: claimID,
		UserID:  userID,
		Role:    role,
	}
	mock.lockDeleteClaim.Lock()
	mock.calls.DeleteClaim = append(mock.calls.DeleteClaim, callInfo)
	mock.lockDeleteClaim.Unlock()
	return mock.DeleteClaimFunc(ctx, claimID, userID, role)
}

func (mock *claimServiceMock) DeleteClaimCalls() []struct {
	Ctx     context.Context
	ClaimID uuid.UUID
	UserID  uuid.UUID
	Role    domain.Role
} {
	var calls []struct {
		Ctx     context.Context
		ClaimID uuid.UUID
		UserID  uuid.UUID
		Role    domain.Role
	}
	mock.lockDeleteClaim.RLock()
	calls = mock.calls.DeleteClaim
	mock.lockDeleteClaim.RUnlock()
	return calls
}

func (mock *claimServiceMock) AddChallengeQuestion(ctx context.Context, claimID uuid.UUID, question string, staffID uuid.UUID) (*domain.Challenge, error) {
	if mock.AddChallengeQuestionFunc == nil {
		panic("claimServiceMock.AddChallengeQuestionFunc: method is nil but claimService.AddChallengeQuestion was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ClaimID  uuid.UUID
		Question string
		StaffID  uuid.UUID
	}{
		Ctx:      ctx,
		ClaimID:  claimID,
		Question: question,
		StaffID:  staffID,
	}
	mock.lockAddChallengeQuestion.Lock()
	mock.calls.AddChallengeQuestion = append(mock.calls.AddChallengeQuestion, callInfo)
	mock.lockAddChallengeQuestion.Unlock()
	return mock.AddChallengeQuestionFunc(ctx, claimID, question, staffID)
}

func (mock *claimServiceMock) AddChallengeQuestionCalls() []struct {
	Ctx      context.Context
	ClaimID  uuid.UUID
	Question string
	StaffID  uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		ClaimID  uuid.UUID
		Question string
		StaffID  uuid.UUID
	}
	mock.lockAddChallengeQuestion.RLock()
	calls = mock.calls.AddChallengeQuestion
	mock.lockAddChallengeQuestion.RUnlock()
	return calls
}

func (mock *claimServiceMock) SubmitChallengeResponse(ctx context.Context, claimID uuid.UUID, challengeID uuid.UUID, answer string, userID uuid.UUID) (*domain.Challenge, error) {
	if mock.SubmitChallengeResponseFunc == nil {
		panic("claimServiceMock.SubmitChallengeResponseFunc: method is nil but claimService.SubmitChallengeResponse was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		ClaimID     uuid.UUID
		ChallengeID uuid.UUID
		Answer      string
		UserID      uuid.UUID
	}{
		Ctx:         ctx,
		ClaimID:     claimID,
		ChallengeID: challengeID,
		Answer:      answer,
		UserID:      userID,
	}
	mock.lockSubmitChallengeResponse.Lock()
	mock.calls.SubmitChallengeResponse = append(mock.calls.SubmitChallengeResponse, callInfo)
	mock.lockSubmitChallengeResponse.Unlock()
	return mock.SubmitChallengeResponseFunc(ctx, claimID, challengeID, answer, userID)
}

func (mock *claimServiceMock) SubmitChallengeResponseCalls() []struct {
	Ctx         context.Context
	ClaimID     uuid.UUID
	ChallengeID uuid.UUID
	Answer      string
	UserID      uuid.UUID
} {
	var calls []struct {
		Ctx         context.Context
		ClaimID     uuid.UUID
		ChallengeID uuid.UUID
		Answer      string
		UserID      uuid.UUID
	}
	mock.lockSubmitChallengeResponse.RLock()
	calls = mock.calls.SubmitChallengeResponse
	mock.lockSubmitChallengeResponse.RUnlock()
	return calls
}

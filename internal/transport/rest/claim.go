package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/claim"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// ClaimTokenHeader carries the token issued to anonymous claimants.
const ClaimTokenHeader = "X-Claim-Token"

type claimService interface {
	CreateClaim(ctx context.Context, input claim.CreateClaimInput) (*claim.CreateClaimResult, error)
	GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	VerifyAnonymousToken(ctx context.Context, claimID uuid.UUID, token string) (*domain.Claim, error)
	UploadProof(ctx context.Context, claimID, userID uuid.UUID, docs []claim.ProofInput) (*domain.Claim, error)
	VerifyClaim(ctx context.Context, claimID, verifierID uuid.UUID, notes *string) (*domain.Claim, error)
	RejectClaim(ctx context.Context, claimID, verifierID uuid.UUID, reason string) (*domain.Claim, error)
	DeleteClaim(ctx context.Context, claimID, userID uuid.UUID, role domain.Role) error
	AddChallengeQuestion(ctx context.Context, claimID uuid.UUID, question string, staffID uuid.UUID) (*domain.Challenge, error)
	SubmitChallengeResponse(ctx context.Context, claimID, challengeID uuid.UUID, answer string, userID uuid.UUID) (*domain.Challenge, error)
}

// ClaimHandler serves claim REST endpoints.
type ClaimHandler struct {
	svc claimService
	log *slog.Logger
}

// NewClaimHandler creates a ClaimHandler.
func NewClaimHandler(svc claimService, logger *slog.Logger) *ClaimHandler {
	return &ClaimHandler{svc: svc, log: logger.With("handler", "claim")}
}

type proofRequest struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type createClaimRequest struct {
	ItemID         uuid.UUID      `json:"item_id"`
	AnonymousEmail *string        `json:"anonymous_email"`
	Description    string         `json:"description"`
	ProofDocuments []proofRequest `json:"proof_documents"`
}

type uploadProofRequest struct {
	Documents []proofRequest `json:"documents"`
}

type verifyClaimRequest struct {
	Notes *string `json:"notes"`
}

type rejectClaimRequest struct {
	Reason string `json:"reason"`
}

type addChallengeRequest struct {
	Question string `json:"question"`
}

type answerChallengeRequest struct {
	Answer string `json:"answer"`
}

func toProofInputs(docs []proofRequest) []claim.ProofInput {
	out := make([]claim.ProofInput, len(docs))
	for i, d := range docs {
		out[i] = claim.ProofInput(d)
	}
	return out
}

// Create handles POST /claims. Authenticated callers file under their
// account; everyone else must supply anonymous_email.
func (h *ClaimHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := claim.CreateClaimInput{
		ItemID:         req.ItemID,
		AnonymousEmail: req.AnonymousEmail,
		Description:    req.Description,
		ProofDocuments: toProofInputs(req.ProofDocuments),
	}
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		input.ClaimantID = &userID
	}

	result, err := h.svc.CreateClaim(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	resp := toClaimResponse(&result.Claim, false)
	resp.AnonymousToken = result.AnonymousToken
	writeJSON(w, http.StatusCreated, resp)
}

// Get handles GET /claims/{id}. Without a session the anonymous claim token
// from X-Claim-Token is accepted instead.
func (h *ClaimHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var (
		c   *domain.Claim
		err error
	)
	if _, authed := ctxutil.UserIDFromCtx(r.Context()); authed {
		c, err = h.svc.GetClaim(r.Context(), id)
	} else if token := r.Header.Get(ClaimTokenHeader); token != "" {
		c, err = h.svc.VerifyAnonymousToken(r.Context(), id, token)
	} else {
		err = domain.ErrUnauthorized
	}
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c, ctxutil.IsStaffCtx(r.Context())))
}

// claimant identifies the caller acting on their own claim: the session
// user, or an anonymous claimant presenting X-Claim-Token. Anonymous callers
// get uuid.Nil and a context carrying the token.
func claimant(w http.ResponseWriter, r *http.Request) (context.Context, uuid.UUID, bool) {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return r.Context(), userID, true
	}
	if token := r.Header.Get(ClaimTokenHeader); token != "" {
		return ctxutil.WithClaimToken(r.Context(), token), uuid.Nil, true
	}
	writeError(w, http.StatusUnauthorized, "unauthorized")
	return nil, uuid.Nil, false
}

// UploadProofs handles POST /claims/{id}/proofs. Anonymous claimants use
// X-Claim-Token.
func (h *ClaimHandler) UploadProofs(w http.ResponseWriter, r *http.Request) {
	ctx, userID, ok := claimant(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req uploadProofRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.UploadProof(ctx, id, userID, toProofInputs(req.Documents))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c, ctxutil.IsStaffCtx(r.Context())))
}

// Verify handles POST /claims/{id}/verify. The body is optional.
func (h *ClaimHandler) Verify(w http.ResponseWriter, r *http.Request) {
	staffID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req verifyClaimRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.VerifyClaim(r.Context(), id, staffID, req.Notes)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c, true))
}

// Reject handles POST /claims/{id}/reject.
func (h *ClaimHandler) Reject(w http.ResponseWriter, r *http.Request) {
	staffID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rejectClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.RejectClaim(r.Context(), id, staffID, req.Reason)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClaimResponse(c, true))
}

// Delete handles DELETE /claims/{id}.
func (h *ClaimHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	role := domain.Role(ctxutil.UserRoleFromCtx(r.Context()))
	if err := h.svc.DeleteClaim(r.Context(), id, userID, role); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddChallenge handles POST /claims/{id}/challenges.
func (h *ClaimHandler) AddChallenge(w http.ResponseWriter, r *http.Request) {
	staffID, ok := requireUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req addChallengeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.svc.AddChallengeQuestion(r.Context(), id, req.Question, staffID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toChallengeResponse(ch))
}

// AnswerChallenge handles POST /claims/{id}/challenges/{challengeId}/answer.
// Anonymous claimants use X-Claim-Token.
func (h *ClaimHandler) AnswerChallenge(w http.ResponseWriter, r *http.Request) {
	ctx, userID, ok := claimant(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	challengeID, ok := pathUUID(w, r, "challengeId")
	if !ok {
		return
	}
	var req answerChallengeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.svc.SubmitChallengeResponse(ctx, id, challengeID, req.Answer, userID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toChallengeResponse(ch))
}

package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// UploadProof attaches proof documents to a claim. Only the claimant or staff
// may upload, and only while the claim is FILED or IDENTITY_PROOF_REQUESTED.
// An anonymous claimant passes uuid.Nil and carries the claim token in ctx.
// A claim waiting for proof returns to FILED.
func (s *Service) UploadProof(ctx context.Context, claimID, userID uuid.UUID, docs []ProofInput) (*domain.Claim, error) {
	if errs := validateProofs(docs, true); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	var claim *domain.Claim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		claim, err = s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}
		if !ctxutil.IsStaffCtx(txCtx) {
			if err := authorizeClaimant(txCtx, claim, userID); err != nil {
				return err
			}
		}
		if !claim.Status.AcceptsProof() {
			return domain.NewValidationError("status", "proof cannot be uploaded in status "+claim.Status.String())
		}

		now := s.now().UTC()
		claim.ProofDocuments = append(claim.ProofDocuments, toProofDocuments(docs, now)...)
		if claim.Status == domain.ClaimStatusIdentityProofRequested {
			claim.Status = domain.ClaimStatusFiled
		}
		claim.UpdatedAt = now

		if err := s.claims.Update(txCtx, *claim); err != nil {
			return fmt.Errorf("update claim: %w", err)
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityProofUploaded, map[string]any{
			"documents":   len(docs),
			"uploaded_by": actor(userID),
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "proof uploaded",
		slog.String("claim_id", claim.ID.String()),
		slog.String("user_id", actor(userID)),
		slog.Int("documents", len(docs)),
	)
	return claim, nil
}

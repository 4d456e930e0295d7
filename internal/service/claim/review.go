package claim

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/notification"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// VerifyClaim accepts a FILED claim that carries at least one proof document.
// The item becomes CLAIMED by the claimant in the same transaction and the
// claimant is told that the release fee is due. Staff only.
func (s *Service) VerifyClaim(ctx context.Context, claimID, verifierID uuid.UUID, notes *string) (*domain.Claim, error) {
	if !ctxutil.IsStaffCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	notes = trimOrNil(notes)
	if notes != nil && len([]rune(*notes)) > maxReasonLength {
		return nil, domain.NewValidationError("notes", "max 1000 characters")
	}

	var claim *domain.Claim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		claim, err = s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}

		switch claim.Status {
		case domain.ClaimStatusFiled:
		case domain.ClaimStatusIdentityProofRequested:
			return domain.NewValidationError("status", "identity proof has not been provided")
		default:
			return domain.NewValidationError("status", "cannot verify a claim in status "+claim.Status.String())
		}
		if len(claim.ProofDocuments) == 0 {
			return domain.NewValidationError("proof_documents", "at least one proof document is required")
		}

		item, err := s.items.GetByIDForUpdate(txCtx, claim.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.Status != domain.ItemStatusAvailable {
			return fmt.Errorf("item %s is %s: %w", item.ID, item.Status, domain.ErrConflict)
		}
		others, err := s.claims.ListByItem(txCtx, item.ID)
		if err != nil {
			return fmt.Errorf("list claims: %w", err)
		}
		for _, o := range others {
			if o.ID != claim.ID && o.Status.IsVerifiedOrLater() {
				return fmt.Errorf("item %s already has a verified claim: %w", item.ID, domain.ErrConflict)
			}
		}

		now := s.now().UTC()
		claim.Status = domain.ClaimStatusVerified
		claim.VerifiedBy = &verifierID
		claim.VerifiedAt = &now
		claim.VerificationNotes = notes
		claim.UpdatedAt = now

		if err := s.claims.Update(txCtx, *claim); err != nil {
			return fmt.Errorf("update claim: %w", err)
		}
		if err := s.items.UpdateStatus(txCtx, item.ID, domain.ItemStatusClaimed, claim.ClaimantID); err != nil {
			return fmt.Errorf("update item status: %w", err)
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityClaimVerified, map[string]any{
			"verified_by": verifierID.String(),
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyClaimant(ctx, domain.EventClaimVerifiedFeeDue, claim, nil)

	s.log.InfoContext(ctx, "claim verified",
		slog.String("claim_id", claim.ID.String()),
		slog.String("item_id", claim.ItemID.String()),
		slog.String("verifier_id", verifierID.String()),
	)
	return claim, nil
}

// RejectClaim rejects a FILED, IDENTITY_PROOF_REQUESTED or VERIFIED claim.
// If the claim held the item, the item is released. Staff only.
func (s *Service) RejectClaim(ctx context.Context, claimID, verifierID uuid.UUID, reason string) (*domain.Claim, error) {
	if !ctxutil.IsStaffCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, domain.NewValidationError("reason", "required")
	}
	if len([]rune(reason)) > maxReasonLength {
		return nil, domain.NewValidationError("reason", "max 1000 characters")
	}

	var claim *domain.Claim
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		claim, err = s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}

		switch claim.Status {
		case domain.ClaimStatusFiled, domain.ClaimStatusIdentityProofRequested, domain.ClaimStatusVerified:
		default:
			return domain.NewValidationError("status", "cannot reject a claim in status "+claim.Status.String())
		}

		item, err := s.items.GetByIDForUpdate(txCtx, claim.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		release := holdsItem(claim, item)

		now := s.now().UTC()
		claim.Status = domain.ClaimStatusRejected
		claim.RejectedBy = &verifierID
		claim.RejectedAt = &now
		claim.RejectionReason = &reason
		claim.UpdatedAt = now

		if err := s.claims.Update(txCtx, *claim); err != nil {
			return fmt.Errorf("update claim: %w", err)
		}
		if release {
			if err := s.items.UpdateStatus(txCtx, item.ID, domain.ItemStatusAvailable, nil); err != nil {
				return fmt.Errorf("update item status: %w", err)
			}
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityClaimRejected, map[string]any{
			"rejected_by":   verifierID.String(),
			"reason":        reason,
			"item_released": release,
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyClaimant(ctx, domain.EventClaimRejected, claim, map[string]any{"reason": reason})

	s.log.InfoContext(ctx, "claim rejected",
		slog.String("claim_id", claim.ID.String()),
		slog.String("item_id", claim.ItemID.String()),
		slog.String("verifier_id", verifierID.String()),
	)
	return claim, nil
}

// notifyClaimant addresses an account holder by ID and an anonymous
// claimant by e-mail.
func (s *Service) notifyClaimant(ctx context.Context, event domain.NotificationEvent, c *domain.Claim, extra map[string]any) {
	n := notification.ClaimNotification(event, c.ClaimantID, c, extra)
	if c.IsAnonymous() && c.AnonymousEmail != nil {
		n.Audience = domain.AudienceUser
		n.Payload["email"] = *c.AnonymousEmail
	}
	s.notifier.Enqueue(ctx, n)
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

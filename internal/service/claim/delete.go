package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

// DeleteClaim soft-deletes a claim. A USER may delete only their own claim;
// staff may delete any. If the claim was holding the item, the item becomes
// AVAILABLE again.
func (s *Service) DeleteClaim(ctx context.Context, claimID, userID uuid.UUID, role domain.Role) error {
	if !role.IsValid() {
		return domain.ErrForbidden
	}

	var claim *domain.Claim
	var released bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		claim, err = s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}
		if !role.IsStaff() && !claim.IsOwnedBy(userID) {
			return domain.ErrForbidden
		}

		item, err := s.items.GetByIDForUpdate(txCtx, claim.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		released = holdsItem(claim, item)

		now := s.now().UTC()
		if err := s.claims.SoftDelete(txCtx, claim.ID, now); err != nil {
			return fmt.Errorf("delete claim: %w", err)
		}
		if released {
			if err := s.items.UpdateStatus(txCtx, item.ID, domain.ItemStatusAvailable, nil); err != nil {
				return fmt.Errorf("update item status: %w", err)
			}
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityClaimDeleted, map[string]any{
			"deleted_by":    userID.String(),
			"role":          role.String(),
			"item_released": released,
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "claim deleted",
		slog.String("claim_id", claim.ID.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("item_released", released),
	)
	return nil
}

package claim

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// GetClaim returns a claim visible to the caller: its claimant or staff.
func (s *Service) GetClaim(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	claim, err := s.claims.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	if !claim.IsOwnedBy(userID) && !ctxutil.IsStaffCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	return claim, nil
}

// ListClaimsForItem returns every live claim on an item. Staff only.
func (s *Service) ListClaimsForItem(ctx context.Context, itemID uuid.UUID) ([]domain.Claim, error) {
	if !ctxutil.IsStaffCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	claims, err := s.claims.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list claims: %w", err)
	}
	return claims, nil
}

// VerifyAnonymousToken loads an anonymous claim after checking the token
// handed out at filing time.
func (s *Service) VerifyAnonymousToken(ctx context.Context, claimID uuid.UUID, token string) (*domain.Claim, error) {
	if token == "" {
		return nil, domain.ErrForbidden
	}

	claim, err := s.claims.GetByID(ctx, claimID)
	if err != nil {
		return nil, fmt.Errorf("get claim: %w", err)
	}
	if err := checkClaimToken(claim, token); err != nil {
		return nil, err
	}
	return claim, nil
}

// authorizeClaimant lets through the account that filed c or, for an
// anonymous claim, a caller holding its token in ctx.
func authorizeClaimant(ctx context.Context, c *domain.Claim, userID uuid.UUID) error {
	if c.IsOwnedBy(userID) {
		return nil
	}
	if token, ok := ctxutil.ClaimTokenFromCtx(ctx); ok {
		return checkClaimToken(c, token)
	}
	return domain.ErrForbidden
}

func checkClaimToken(c *domain.Claim, token string) error {
	if c.AnonymousTokenHash == nil {
		return domain.ErrForbidden
	}
	err := bcrypt.CompareHashAndPassword([]byte(*c.AnonymousTokenHash), []byte(token))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrForbidden
	}
	if err != nil {
		return fmt.Errorf("compare claim token: %w", err)
	}
	return nil
}

// actor names the caller in activity metadata.
func actor(userID uuid.UUID) string {
	if userID == uuid.Nil {
		return "anonymous"
	}
	return userID.String()
}

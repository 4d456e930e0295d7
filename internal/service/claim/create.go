package claim

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/challenge"
	"github.com/heartmarshall/lostfound-backend/internal/service/fraud"
	"github.com/heartmarshall/lostfound-backend/internal/service/notification"
)

// CreateClaimResult is the outcome of filing a claim. AnonymousToken is set
// only for anonymous claims and is never stored in clear text.
type CreateClaimResult struct {
	Claim          domain.Claim
	AnonymousToken string
}

// CreateClaim files a claim on an available item.
//
// The item row is locked before availability and existing claims are
// checked, so of two concurrent filings the later one sees the earlier one.
// Without proof documents the claim starts in IDENTITY_PROOF_REQUESTED.
// Fraud scoring runs after commit and never fails the filing.
func (s *Service) CreateClaim(ctx context.Context, input CreateClaimInput) (*CreateClaimResult, error) {
	input.AnonymousEmail = normalizeEmail(input.AnonymousEmail)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		token     string
		tokenHash *string
	)
	if input.AnonymousEmail != nil {
		raw, hash, err := s.generateToken()
		if err != nil {
			return nil, err
		}
		token, tokenHash = raw, &hash
	}

	now := s.now().UTC()
	claim := domain.Claim{
		ID:                 uuid.New(),
		ItemID:             input.ItemID,
		ClaimantID:         input.ClaimantID,
		AnonymousEmail:     input.AnonymousEmail,
		AnonymousTokenHash: tokenHash,
		Description:        strings.TrimSpace(input.Description),
		Status:             domain.ClaimStatusFiled,
		ProofDocuments:     toProofDocuments(input.ProofDocuments, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if len(claim.ProofDocuments) == 0 {
		claim.Status = domain.ClaimStatusIdentityProofRequested
	}

	var (
		item   *domain.Item
		priors []domain.Claim
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		item, err = s.items.GetByIDForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item.Status != domain.ItemStatusAvailable {
			return fmt.Errorf("item %s is %s: %w", item.ID, item.Status, domain.ErrConflict)
		}

		existing, err := s.claims.ListByItem(txCtx, item.ID)
		if err != nil {
			return fmt.Errorf("list claims: %w", err)
		}
		for i := range existing {
			other := &existing[i]
			if other.Status.IsVerifiedOrLater() {
				return fmt.Errorf("item %s already has a verified claim: %w", item.ID, domain.ErrConflict)
			}
			if other.SameClaimant(&claim) {
				if !other.Status.IsTerminal() {
					return domain.NewValidationError("item_id", "an active claim for this item already exists")
				}
				priors = append(priors, *other)
			}
		}

		if ch := challenge.AutoIssue(item, now); ch != nil {
			claim.Challenges = []domain.Challenge{*ch}
		}

		if err := s.claims.Create(txCtx, claim); err != nil {
			return fmt.Errorf("create claim: %w", err)
		}

		if err := s.activity.Log(txCtx, claimActivity(&claim, domain.ActivityClaimFiled, map[string]any{
			"anonymous": claim.IsAnonymous(),
			"proofs":    len(claim.ProofDocuments),
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		if len(claim.Challenges) > 0 {
			if err := s.activity.Log(txCtx, claimActivity(&claim, domain.ActivityChallengeIssued, map[string]any{
				"challenge_id": claim.Challenges[0].ID.String(),
				"kind":         claim.Challenges[0].Kind.String(),
			})); err != nil {
				return fmt.Errorf("activity log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.assessFraud(ctx, &claim, item, priors)

	s.notifier.Enqueue(ctx, notification.ClaimNotification(domain.EventClaimFiled, nil, &claim, map[string]any{
		"fraud_risk_score": claim.FraudRiskScore,
		"fraud_flags":      claim.FraudFlags,
	}))

	s.log.InfoContext(ctx, "claim filed",
		slog.String("claim_id", claim.ID.String()),
		slog.String("item_id", claim.ItemID.String()),
		slog.String("status", claim.Status.String()),
		slog.Bool("anonymous", claim.IsAnonymous()),
		slog.Int("fraud_risk_score", claim.FraudRiskScore),
	)

	return &CreateClaimResult{Claim: claim, AnonymousToken: token}, nil
}

// assessFraud scores the new claim and stores the result. Failures are
// logged and leave the claim unscored.
func (s *Service) assessFraud(ctx context.Context, c *domain.Claim, item *domain.Item, priors []domain.Claim) {
	var (
		userID     uuid.UUID
		activities []domain.Activity
	)
	if c.ClaimantID != nil {
		userID = *c.ClaimantID
		var err error
		activities, err = s.activity.ListByUserActions(ctx, userID, domain.ActivityClaimFiled, domain.ActivityClaimRejected)
		if err != nil {
			s.log.WarnContext(ctx, "fraud scoring skipped: load activity",
				slog.String("claim_id", c.ID.String()),
				slog.String("error", err.Error()),
			)
			return
		}
	}

	assessment, err := s.fraud.CalculateFraudRiskScore(ctx, userID, activities, fraud.ClaimContext{
		ClaimID:     c.ID,
		Item:        item,
		Description: c.Description,
		PriorClaims: priors,
	})
	if err != nil {
		s.log.WarnContext(ctx, "fraud scoring failed",
			slog.String("claim_id", c.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.claims.UpdateFraud(ctx, c.ID, assessment); err != nil {
		s.log.WarnContext(ctx, "store fraud assessment",
			slog.String("claim_id", c.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	c.FraudRiskScore = assessment.Score
	c.FraudFlags = assessment.Flags
}

// generateToken returns a random URL-safe token and its bcrypt hash.
func (s *Service) generateToken() (raw, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate claim token: %w", err)
	}
	raw = base64.RawURLEncoding.EncodeToString(b)

	h, err := bcrypt.GenerateFromPassword([]byte(raw), s.cfg.TokenHashCost)
	if err != nil {
		return "", "", fmt.Errorf("hash claim token: %w", err)
	}
	return raw, string(h), nil
}

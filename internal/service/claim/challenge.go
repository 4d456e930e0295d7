package claim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/challenge"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// AddChallengeQuestion appends a staff-written question to an open claim.
func (s *Service) AddChallengeQuestion(ctx context.Context, claimID uuid.UUID, question string, staffID uuid.UUID) (*domain.Challenge, error) {
	if !ctxutil.IsStaffCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	ch, err := challenge.NewCustom(question, staffID, s.now().UTC())
	if err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		claim, err := s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}
		if claim.Status.IsTerminal() {
			return domain.NewValidationError("status", "claim is closed")
		}

		claim.Challenges = append(claim.Challenges, ch)
		claim.UpdatedAt = ch.ConductedAt
		if err := s.claims.Update(txCtx, *claim); err != nil {
			return fmt.Errorf("update claim: %w", err)
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityChallengeIssued, map[string]any{
			"challenge_id": ch.ID.String(),
			"kind":         ch.Kind.String(),
			"issued_by":    staffID.String(),
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "challenge issued",
		slog.String("claim_id", claimID.String()),
		slog.String("challenge_id", ch.ID.String()),
	)
	return &ch, nil
}

// SubmitChallengeResponse grades the claimant's answer to a challenge.
// An anonymous claimant passes uuid.Nil and carries the claim token in ctx.
// Each challenge accepts one answer. The answer text is stored on the claim
// but never written to the activity log.
func (s *Service) SubmitChallengeResponse(ctx context.Context, claimID, challengeID uuid.UUID, answer string, userID uuid.UUID) (*domain.Challenge, error) {
	if len([]rune(answer)) > maxAnswerLength {
		return nil, domain.NewValidationError("answer", "max 500 characters")
	}

	var result domain.Challenge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		claim, err := s.claims.GetByIDForUpdate(txCtx, claimID)
		if err != nil {
			return fmt.Errorf("get claim: %w", err)
		}
		if err := authorizeClaimant(txCtx, claim, userID); err != nil {
			return err
		}
		if claim.Status.IsTerminal() {
			return domain.NewValidationError("status", "claim is closed")
		}

		ch := claim.FindChallenge(challengeID)
		if ch == nil {
			return fmt.Errorf("challenge %s: %w", challengeID, domain.ErrNotFound)
		}

		item, err := s.items.GetByID(txCtx, claim.ItemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		now := s.now().UTC()
		if err := challenge.Answer(ch, item, answer, now); err != nil {
			return err
		}
		claim.UpdatedAt = now

		if err := s.claims.Update(txCtx, *claim); err != nil {
			return fmt.Errorf("update claim: %w", err)
		}

		if err := s.activity.Log(txCtx, claimActivity(claim, domain.ActivityChallengeAnswered, map[string]any{
			"challenge_id": ch.ID.String(),
			"passed":       *ch.Passed,
			"score":        *ch.MatchScore,
		})); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		result = *ch
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "challenge answered",
		slog.String("claim_id", claimID.String()),
		slog.String("challenge_id", challengeID.String()),
		slog.Bool("passed", *result.Passed),
	)
	return &result, nil
}

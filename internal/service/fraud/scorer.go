// Package fraud computes a heuristic 0-100 risk score for a newly filed claim
// from the claimant's recent behaviour. The scorer is stateless and never
// writes; the caller persists the assessment onto the claim.
package fraud

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

// Flags emitted by the individual signals.
const (
	FlagRapidClaims24h          = "RAPID_CLAIMS_24H"
	FlagMonthlyLimitExceeded    = "MONTHLY_LIMIT_EXCEEDED"
	FlagMonthlyLimitApproaching = "MONTHLY_LIMIT_APPROACHING"
	FlagHighRejectionRate       = "HIGH_REJECTION_RATE"
	FlagElevatedRejectionRate   = "ELEVATED_REJECTION_RATE"
	FlagFutureFoundDate         = "FUTURE_FOUND_DATE"
	FlagRepeatedItemClaims      = "REPEATED_ITEM_CLAIMS"
	FlagPriorItemRejection      = "PRIOR_ITEM_REJECTION"
	FlagDescriptionCopied       = "DESCRIPTION_COPIED"
)

// Signal weights.
const (
	pointsRapidClaims        = 35
	pointsMonthlyExceeded    = 25
	pointsMonthlyApproaching = 10
	pointsHighRejection      = 20
	pointsElevatedRejection  = 10
	pointsFutureFoundDate    = 40
	pointsRepeatedItem       = 30
	pointsPriorItemRejection = 15
	pointsDescriptionCopied  = 60

	maxScore = 100

	highRejectionRate      = 0.6
	elevatedRejectionRate  = 0.4
	monthlyApproachingRate = 0.7

	rapidWindow   = 24 * time.Hour
	monthlyWindow = 30 * 24 * time.Hour
)

// Config holds the tunable limits of the scorer.
type Config struct {
	// RapidClaimsLimit is the number of claims in 24h above which the rapid
	// signal triggers.
	RapidClaimsLimit int
	// MonthlyClaimLimit is the number of claims per 30 days above which the
	// monthly signal triggers.
	MonthlyClaimLimit int
	// HighRiskThreshold is the score at which a warning is logged.
	HighRiskThreshold int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		RapidClaimsLimit:  5,
		MonthlyClaimLimit: 5,
		HighRiskThreshold: 70,
	}
}

// ClaimContext carries the claim-specific evidence.
type ClaimContext struct {
	ClaimID     uuid.UUID
	Item        *domain.Item
	Description string
	// PriorClaims are the claimant's other claims on the same item,
	// excluding the one being scored.
	PriorClaims []domain.Claim
}

// Scorer evaluates fraud signals.
type Scorer struct {
	cfg   Config
	log   *slog.Logger
	clock func() time.Time
}

// NewScorer creates a Scorer. A nil clock means time.Now.
func NewScorer(log *slog.Logger, cfg Config, clock func() time.Time) *Scorer {
	if clock == nil {
		clock = time.Now
	}
	return &Scorer{
		cfg:   cfg,
		log:   log.With("service", "fraud"),
		clock: clock,
	}
}

// CalculateFraudRiskScore sums the triggered signals and caps the result at 100.
// activities must belong to userID; entries of other users are ignored.
func (s *Scorer) CalculateFraudRiskScore(
	ctx context.Context,
	userID uuid.UUID,
	activities []domain.Activity,
	claim ClaimContext,
) (domain.FraudAssessment, error) {
	if err := ctx.Err(); err != nil {
		return domain.FraudAssessment{}, err
	}

	now := s.clock()
	var (
		points float64
		flags  []string
	)
	add := func(p int, flag string) {
		points += float64(p)
		flags = append(flags, flag)
	}

	filed24h, filed30d, filedTotal, rejectedTotal := countClaimActivity(userID, activities, now)

	if filed24h > s.cfg.RapidClaimsLimit {
		add(pointsRapidClaims, FlagRapidClaims24h)
	}

	if limit := s.cfg.MonthlyClaimLimit; limit > 0 {
		switch {
		case filed30d > limit:
			add(pointsMonthlyExceeded, FlagMonthlyLimitExceeded)
		case float64(filed30d) > monthlyApproachingRate*float64(limit):
			add(pointsMonthlyApproaching, FlagMonthlyLimitApproaching)
		}
	}

	if filedTotal > 0 {
		rate := float64(rejectedTotal) / float64(filedTotal)
		switch {
		case rate > highRejectionRate:
			add(pointsHighRejection, FlagHighRejectionRate)
		case rate > elevatedRejectionRate:
			add(pointsElevatedRejection, FlagElevatedRejectionRate)
		}
	}

	if claim.Item != nil && claim.Item.FoundDate.After(now) {
		add(pointsFutureFoundDate, FlagFutureFoundDate)
	}

	switch rejected := countRejected(claim.PriorClaims, claim.ClaimID); {
	case rejected >= 2:
		add(pointsRepeatedItem, FlagRepeatedItemClaims)
	case rejected == 1:
		add(pointsPriorItemRejection, FlagPriorItemRejection)
	}

	if claim.Item != nil && isVerbatimCopy(claim.Description, claim.Item.Description) {
		add(pointsDescriptionCopied, FlagDescriptionCopied)
	}

	score := min(int(math.Round(points)), maxScore)

	if score >= s.cfg.HighRiskThreshold {
		s.log.WarnContext(ctx, "high fraud risk claim",
			slog.String("user_id", userID.String()),
			slog.String("claim_id", claim.ClaimID.String()),
			slog.Int("score", score),
			slog.Any("flags", flags),
		)
	}

	return domain.FraudAssessment{Score: score, Flags: flags}, nil
}

// countClaimActivity counts the user's CLAIM_FILED entries in the 24h and
// 30 day windows and the overall CLAIM_FILED / CLAIM_REJECTED totals.
func countClaimActivity(userID uuid.UUID, activities []domain.Activity, now time.Time) (filed24h, filed30d, filedTotal, rejectedTotal int) {
	for _, a := range activities {
		if a.UserID == nil || *a.UserID != userID {
			continue
		}
		switch a.Action {
		case domain.ActivityClaimFiled:
			filedTotal++
			age := now.Sub(a.CreatedAt)
			if age <= rapidWindow {
				filed24h++
			}
			if age <= monthlyWindow {
				filed30d++
			}
		case domain.ActivityClaimRejected:
			rejectedTotal++
		}
	}
	return filed24h, filed30d, filedTotal, rejectedTotal
}

func countRejected(claims []domain.Claim, exclude uuid.UUID) int {
	n := 0
	for _, c := range claims {
		if c.ID != exclude && c.Status == domain.ClaimStatusRejected {
			n++
		}
	}
	return n
}

func isVerbatimCopy(claimDescription, itemDescription string) bool {
	a := domain.NormalizeText(claimDescription)
	return a != "" && a == domain.NormalizeText(itemDescription)
}

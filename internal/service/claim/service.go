// Package claim implements the claim lifecycle: filing, proof handling,
// verification, rejection, deletion and identity challenges. Every operation
// that touches both a claim and its item runs in one transaction with the
// item row locked.
package claim

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/fraud"
)

type claimRepo interface {
	Create(ctx context.Context, c domain.Claim) error
	Update(ctx context.Context, c domain.Claim) error
	UpdateFraud(ctx context.Context, id uuid.UUID, a domain.FraudAssessment) error
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Claim, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, claimedBy *uuid.UUID) error
}

type activityStore interface {
	Log(ctx context.Context, a domain.Activity) error
	ListByUserActions(ctx context.Context, userID uuid.UUID, actions ...domain.ActivityAction) ([]domain.Activity, error)
}

type fraudScorer interface {
	CalculateFraudRiskScore(ctx context.Context, userID uuid.UUID, activities []domain.Activity, claim fraud.ClaimContext) (domain.FraudAssessment, error)
}

type notifier interface {
	Enqueue(ctx context.Context, n domain.Notification) bool
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds claim service settings.
type Config struct {
	// TokenHashCost is the bcrypt cost for anonymous claim tokens.
	TokenHashCost int
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{TokenHashCost: bcrypt.DefaultCost}
}

// Service provides claim lifecycle operations.
type Service struct {
	claims   claimRepo
	items    itemRepo
	activity activityStore
	fraud    fraudScorer
	notifier notifier
	tx       txManager
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Claim service.
func NewService(
	log *slog.Logger,
	cfg Config,
	claims claimRepo,
	items itemRepo,
	activity activityStore,
	scorer fraudScorer,
	notifier notifier,
	tx txManager,
) *Service {
	if cfg.TokenHashCost < bcrypt.MinCost {
		cfg.TokenHashCost = bcrypt.DefaultCost
	}
	return &Service{
		claims:   claims,
		items:    items,
		activity: activity,
		fraud:    scorer,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "claim"),
		now:      time.Now,
	}
}

// claimActivity builds an activity entry attributed to the claimant, so that
// fraud scoring sees the claimant's own filing and rejection history.
func claimActivity(c *domain.Claim, action domain.ActivityAction, metadata map[string]any) domain.Activity {
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["item_id"] = c.ItemID.String()
	return domain.Activity{
		UserID:     c.ClaimantID,
		Action:     action,
		EntityType: domain.EntityTypeClaim,
		EntityID:   &c.ID,
		Metadata:   metadata,
	}
}

// holdsItem reports whether c is the claim that put item into CLAIMED.
// At most one claim per item can be verified or later.
func holdsItem(c *domain.Claim, item *domain.Item) bool {
	return c.Status.IsVerifiedOrLater() && item.Status == domain.ItemStatusClaimed
}

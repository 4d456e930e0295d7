// Package match links found items to lost reports. It scores candidates,
// persists matches above the reject threshold, applies the auto-confirm
// policy and keeps pending matches current through rescans.
package match

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/notification"
)

type matchRepo interface {
	Upsert(ctx context.Context, m domain.Match) (domain.Match, bool, error)
	Update(ctx context.Context, m domain.Match) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (domain.Match, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Match, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Match, error)
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error)
	ListPendingWithRefs(ctx context.Context) ([]domain.MatchWithRefs, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	ListAvailableByCategory(ctx context.Context, category string) ([]domain.Item, error)
}

type reportRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LostReport, error)
	ListByCategory(ctx context.Context, category string) ([]domain.LostReport, error)
}

type settingsProvider interface {
	GetConfig(ctx context.Context) (domain.Settings, error)
}

type activityLogger interface {
	Log(ctx context.Context, a domain.Activity) error
}

type notifier interface {
	Enqueue(ctx context.Context, n domain.Notification) bool
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config bounds the candidate fan-out.
type Config struct {
	GenerateConcurrency int
	RescanConcurrency   int
}

// DefaultConfig returns the production limits.
func DefaultConfig() Config {
	return Config{GenerateConcurrency: 10, RescanConcurrency: 5}
}

// Service provides match lifecycle operations.
type Service struct {
	matches  matchRepo
	items    itemRepo
	reports  reportRepo
	settings settingsProvider
	activity activityLogger
	notifier notifier
	tx       txManager
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Match service.
func NewService(
	log *slog.Logger,
	cfg Config,
	matches matchRepo,
	items itemRepo,
	reports reportRepo,
	settings settingsProvider,
	activity activityLogger,
	notifier notifier,
	tx txManager,
) *Service {
	if cfg.GenerateConcurrency < 1 {
		cfg.GenerateConcurrency = 1
	}
	if cfg.RescanConcurrency < 1 {
		cfg.RescanConcurrency = 1
	}
	return &Service{
		matches:  matches,
		items:    items,
		reports:  reports,
		settings: settings,
		activity: activity,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
		log:      log.With("service", "match"),
		now:      time.Now,
	}
}

// pendingNotification is sent after the surrounding transaction commits.
type pendingNotification struct {
	event   domain.NotificationEvent
	ownerID uuid.UUID
	match   domain.Match
}

func (s *Service) notify(ctx context.Context, p *pendingNotification) {
	if p == nil {
		return
	}
	s.notifier.Enqueue(ctx, notification.MatchNotification(p.event, p.ownerID, p.match))
}

// Package settings serves the matching configuration singleton. Callers get
// value snapshots; an update produces a new snapshot.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

type settingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	GetForUpdate(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type activityLogger interface {
	Log(ctx context.Context, a domain.Activity) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides read and admin update of the matching settings.
type Service struct {
	repo     settingsRepo
	activity activityLogger
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, repo settingsRepo, activity activityLogger, tx txManager) *Service {
	return &Service{
		repo:     repo,
		activity: activity,
		tx:       tx,
		log:      log.With("service", "settings"),
		now:      time.Now,
	}
}

// GetConfig returns the current settings snapshot, creating the row with
// defaults on first read.
func (s *Service) GetConfig(ctx context.Context) (domain.Settings, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return cfg, nil
}

// UpdateConfig merges update into the stored settings field by field and
// returns the new snapshot. Admin only.
func (s *Service) UpdateConfig(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.Settings{}, domain.ErrForbidden
	}
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Settings{}, domain.ErrUnauthorized
	}
	if update.IsEmpty() {
		return domain.Settings{}, domain.NewValidationError("settings", "nothing to update")
	}

	var updated domain.Settings
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.repo.GetForUpdate(txCtx)
		if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}

		next := current.Merge(update)
		if err := next.Validate(); err != nil {
			return err
		}
		next.UpdatedAt = s.now().UTC()
		next.UpdatedBy = &adminID

		if err := s.repo.Save(txCtx, next); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			UserID:     &adminID,
			Action:     domain.ActivitySettingsUpdated,
			EntityType: domain.EntityTypeSettings,
			Metadata:   changes(current, next),
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}

		updated = next
		return nil
	})
	if err != nil {
		return domain.Settings{}, err
	}

	s.log.InfoContext(ctx, "settings updated",
		slog.String("user_id", adminID.String()),
		slog.Int("auto_match_threshold", updated.AutoMatchThreshold),
		slog.Int("reject_threshold", updated.RejectThreshold),
	)
	return updated, nil
}

// changes records old/new pairs of the fields that differ.
func changes(old, next domain.Settings) map[string]any {
	out := make(map[string]any)
	diff := func(field string, a, b any) {
		if a != b {
			out[field] = map[string]any{"old": a, "new": b}
		}
	}
	diff("auto_match_threshold", old.AutoMatchThreshold, next.AutoMatchThreshold)
	diff("reject_threshold", old.RejectThreshold, next.RejectThreshold)
	diff("weights.category", old.Weights.Category, next.Weights.Category)
	diff("weights.keyword", old.Weights.Keyword, next.Weights.Keyword)
	diff("weights.date", old.Weights.Date, next.Weights.Date)
	diff("weights.location", old.Weights.Location, next.Weights.Location)
	diff("weights.feature", old.Weights.Feature, next.Weights.Feature)
	diff("weights.color", old.Weights.Color, next.Weights.Color)
	return out
}

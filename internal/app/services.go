package app

import (
	"log/slog"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/activity"
	claimrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/claim"
	itemrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/item"
	reportrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/lostreport"
	matchrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/match"
	notificationrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/notification"
	settingsrepo "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres/settings"
	"github.com/heartmarshall/lostfound-backend/internal/config"
	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/claim"
	"github.com/heartmarshall/lostfound-backend/internal/service/fraud"
	"github.com/heartmarshall/lostfound-backend/internal/service/match"
	"github.com/heartmarshall/lostfound-backend/internal/service/notification"
	"github.com/heartmarshall/lostfound-backend/internal/service/settings"
)

// Services holds the wired domain services shared by the server and the
// batch commands. The caller owns the Notifier lifecycle.
type Services struct {
	Settings *settings.Service
	Match    *match.Service
	Claim    *claim.Service
	Notifier *notification.Dispatcher
}

// NewServices builds repositories and services on top of pool.
func NewServices(logger *slog.Logger, cfg *config.Config, pool *pgxpool.Pool) *Services {
	txm := postgres.NewTxManager(pool)

	items := itemrepo.New(pool)
	reports := reportrepo.New(pool)
	matches := matchrepo.New(pool)
	claims := claimrepo.New(pool)
	activities := activityrepo.New(pool)
	settingsRepo := settingsrepo.New(pool, SettingsDefaults(cfg.Matching))

	notifier := notification.NewDispatcher(logger, notificationrepo.New(pool), notification.Config{
		QueueSize: cfg.Notification.QueueSize,
		Workers:   cfg.Notification.Workers,
	})

	settingsSvc := settings.NewService(logger, settingsRepo, activities, txm)

	matchSvc := match.NewService(logger,
		match.Config{
			GenerateConcurrency: cfg.Matching.GenerateConcurrency,
			RescanConcurrency:   cfg.Matching.RescanConcurrency,
		},
		matches, items, reports, settingsSvc, activities, notifier, txm,
	)

	scorer := fraud.NewScorer(logger, fraud.Config{
		RapidClaimsLimit:  cfg.Fraud.RapidClaims24h,
		MonthlyClaimLimit: cfg.Fraud.MonthlyClaimLimit,
		HighRiskThreshold: cfg.Fraud.HighRiskThreshold,
	}, nil)

	claimSvc := claim.NewService(logger, claim.DefaultConfig(),
		claims, items, activities, scorer, notifier, txm,
	)

	return &Services{
		Settings: settingsSvc,
		Match:    matchSvc,
		Claim:    claimSvc,
		Notifier: notifier,
	}
}

// SettingsDefaults converts the configured seed thresholds into the
// settings row used on first read.
func SettingsDefaults(cfg config.MatchingConfig) domain.Settings {
	return domain.DefaultSettings(
		int(math.Round(cfg.DefaultRejectThreshold)),
		int(math.Round(cfg.DefaultAutoMatchThreshold)),
	)
}

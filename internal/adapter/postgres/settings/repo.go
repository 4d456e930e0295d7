// Package settings persists the single matching-configuration row.
package settings

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const (
	table = "settings"
	rowID = 1
)

var columns = []string{
	"auto_match_threshold", "reject_threshold",
	"weight_category", "weight_keyword", "weight_date", "weight_location", "weight_feature", "weight_color",
	"updated_at", "updated_by",
}

// Repo provides settings persistence backed by PostgreSQL.
type Repo struct {
	db       postgres.Querier
	defaults domain.Settings
}

// New creates a settings repository. defaults seed the row on first read.
func New(db postgres.Querier, defaults domain.Settings) *Repo {
	return &Repo{db: db, defaults: defaults}
}

type row struct {
	AutoMatchThreshold int        `db:"auto_match_threshold"`
	RejectThreshold    int        `db:"reject_threshold"`
	WeightCategory     float64    `db:"weight_category"`
	WeightKeyword      float64    `db:"weight_keyword"`
	WeightDate         float64    `db:"weight_date"`
	WeightLocation     float64    `db:"weight_location"`
	WeightFeature      float64    `db:"weight_feature"`
	WeightColor        float64    `db:"weight_color"`
	UpdatedAt          time.Time  `db:"updated_at"`
	UpdatedBy          *uuid.UUID `db:"updated_by"`
}

func (r row) toDomain() domain.Settings {
	return domain.Settings{
		AutoMatchThreshold: r.AutoMatchThreshold,
		RejectThreshold:    r.RejectThreshold,
		Weights: domain.Weights{
			Category: r.WeightCategory,
			Keyword:  r.WeightKeyword,
			Date:     r.WeightDate,
			Location: r.WeightLocation,
			Feature:  r.WeightFeature,
			Color:    r.WeightColor,
		},
		UpdatedAt: r.UpdatedAt,
		UpdatedBy: r.UpdatedBy,
	}
}

// Get returns the current settings, creating the row from defaults if it does
// not exist yet.
func (r *Repo) Get(ctx context.Context) (domain.Settings, error) {
	return r.get(ctx, false)
}

// GetForUpdate is Get with the row locked until the transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context) (domain.Settings, error) {
	return r.get(ctx, true)
}

func (r *Repo) get(ctx context.Context, forUpdate bool) (domain.Settings, error) {
	if err := r.ensureRow(ctx); err != nil {
		return domain.Settings{}, err
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": rowID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("build settings query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.Settings{}, fmt.Errorf("get settings: %w", err)
	}
	return out.toDomain(), nil
}

func (r *Repo) ensureRow(ctx context.Context) error {
	d := r.defaults
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(append([]string{"id"}, columns[:8]...)...).
		Values(rowID, d.AutoMatchThreshold, d.RejectThreshold,
			d.Weights.Category, d.Weights.Keyword, d.Weights.Date,
			d.Weights.Location, d.Weights.Feature, d.Weights.Color).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings seed: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

// Save overwrites the settings row.
func (r *Repo) Save(ctx context.Context, s domain.Settings) error {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"auto_match_threshold": s.AutoMatchThreshold,
			"reject_threshold":     s.RejectThreshold,
			"weight_category":      s.Weights.Category,
			"weight_keyword":       s.Weights.Keyword,
			"weight_date":          s.Weights.Date,
			"weight_location":      s.Weights.Location,
			"weight_feature":       s.Weights.Feature,
			"weight_color":         s.Weights.Color,
			"updated_at":           s.UpdatedAt,
			"updated_by":           s.UpdatedBy,
		}).
		Where(sq.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build settings update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "settings", uuid.Nil)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("settings: %w", domain.ErrNotFound)
	}
	return nil
}

// Package activity implements the append-only activity log using PostgreSQL.
// Entries are the audit trail of state changes and the evidence read by
// fraud scoring.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const table = "activities"

var columns = []string{"id", "user_id", "action", "entity_type", "entity_id", "metadata", "created_at"}

// Repo provides activity log persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Log appends an entry. A missing ID or timestamp is filled in.
// Satisfies match.activityLogger, claim.activityLogger and settings.activityLogger.
func (r *Repo) Log(ctx context.Context, a domain.Activity) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now().UTC()
	}

	metadata := a.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("activity marshal metadata: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserID, string(a.Action), string(a.EntityType), a.EntityID, metadataJSON, a.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build activity insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     *uuid.UUID `db:"user_id"`
	Action     string     `db:"action"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Metadata   []byte     `db:"metadata"`
	CreatedAt  time.Time  `db:"created_at"`
}

// ListByUserSince returns a user's entries created at or after since, newest
// first.
func (r *Repo) ListByUserSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.Activity, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"user_id": userID},
		sq.GtOrEq{"created_at": since},
	})
}

// ListByUserActions returns every entry of a user with one of the given
// actions, newest first. Fraud scoring uses it for all-time rejection history.
func (r *Repo) ListByUserActions(ctx context.Context, userID uuid.UUID, actions ...domain.ActivityAction) ([]domain.Activity, error) {
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = string(a)
	}
	return r.list(ctx, sq.Eq{"user_id": userID, "action": names})
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID) ([]domain.Activity, error) {
	return r.list(ctx, sq.Eq{"entity_type": string(entityType), "entity_id": entityID})
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]domain.Activity, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build activity query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]domain.Activity, len(rows))
	for i, rw := range rows {
		a, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		out[i] = a
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func (r row) toDomain() (domain.Activity, error) {
	a := domain.Activity{
		ID:         r.ID,
		UserID:     r.UserID,
		Action:     domain.ActivityAction(r.Action),
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		CreatedAt:  r.CreatedAt,
	}

	// metadata: JSONB -> map[string]any
	if len(r.Metadata) > 0 {
		metadata := make(map[string]any)
		if err := json.Unmarshal(r.Metadata, &metadata); err != nil {
			return domain.Activity{}, fmt.Errorf("activity %s unmarshal metadata: %w", r.ID, err)
		}
		a.Metadata = metadata
	}
	return a, nil
}

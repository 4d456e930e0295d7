// Package item implements read access and custody-status updates for found
// items. Items are created by the intake service; this repository never
// inserts them.
package item

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

const table = "items"

// Columns is the select list shared by every item query.
var Columns = []string{
	"id", "finder_id", "category", "description", "keywords", "location", "found_date",
	"identifying_features", "brand", "size", "bag_contents", "color", "secret_identifiers",
	"status", "claimed_by", "created_at", "updated_at",
}

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                  uuid.UUID  `db:"id"`
	FinderID            *uuid.UUID `db:"finder_id"`
	Category            string     `db:"category"`
	Description         string     `db:"description"`
	Keywords            []string   `db:"keywords"`
	Location            string     `db:"location"`
	FoundDate           time.Time  `db:"found_date"`
	IdentifyingFeatures string     `db:"identifying_features"`
	Brand               string     `db:"brand"`
	Size                string     `db:"size"`
	BagContents         []string   `db:"bag_contents"`
	Color               string     `db:"color"`
	SecretIdentifiers   []string   `db:"secret_identifiers"`
	Status              string     `db:"status"`
	ClaimedBy           *uuid.UUID `db:"claimed_by"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Item {
	return domain.Item{
		ID:                  r.ID,
		FinderID:            r.FinderID,
		Category:            r.Category,
		Description:         r.Description,
		Keywords:            r.Keywords,
		Location:            r.Location,
		FoundDate:           r.FoundDate,
		IdentifyingFeatures: r.IdentifyingFeatures,
		Brand:               r.Brand,
		Size:                r.Size,
		BagContents:         r.BagContents,
		Color:               r.Color,
		SecretIdentifiers:   r.SecretIdentifiers,
		Status:              domain.ItemStatus(r.Status),
		ClaimedBy:           r.ClaimedBy,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// GetByID returns an item including its secret identifiers.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns an item and locks its row until the surrounding
// transaction ends. Concurrent claim operations on the same item serialise here.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Item, error) {
	query := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "item", id)
	}
	item := out.toDomain()
	return &item, nil
}

// ListAvailableByCategory returns AVAILABLE items of one category, oldest first.
func (r *Repo) ListAvailableByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"category": category, "status": string(domain.ItemStatusAvailable)}).
		OrderBy("found_date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list items by category: %w", err)
	}

	items := make([]domain.Item, len(rows))
	for i, rw := range rows {
		items[i] = rw.toDomain()
	}
	return items, nil
}

// UpdateStatus sets the custody status and claimant of an item. These are the
// only item columns this service writes.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus, claimedBy *uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("status", string(status)).
		Set("claimed_by", claimedBy).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build item update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Package lostreport implements read access to owners' lost-item reports.
package lostreport

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

const table = "lost_reports"

// Columns is the select list shared by every report query.
var Columns = []string{
	"id", "owner_id", "category", "description", "keywords", "location", "date_lost",
	"identifying_features", "brand", "size", "bag_contents", "color",
	"contact_email", "contact_phone", "created_at",
}

// Repo provides lost report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lost report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                  uuid.UUID `db:"id"`
	OwnerID             uuid.UUID `db:"owner_id"`
	Category            string    `db:"category"`
	Description         string    `db:"description"`
	Keywords            []string  `db:"keywords"`
	Location            string    `db:"location"`
	DateLost            time.Time `db:"date_lost"`
	IdentifyingFeatures string    `db:"identifying_features"`
	Brand               string    `db:"brand"`
	Size                string    `db:"size"`
	BagContents         []string  `db:"bag_contents"`
	Color               string    `db:"color"`
	ContactEmail        string    `db:"contact_email"`
	ContactPhone        *string   `db:"contact_phone"`
	CreatedAt           time.Time `db:"created_at"`
}

func (r row) toDomain() domain.LostReport {
	return domain.LostReport{
		ID:                  r.ID,
		OwnerID:             r.OwnerID,
		Category:            r.Category,
		Description:         r.Description,
		Keywords:            r.Keywords,
		Location:            r.Location,
		DateLost:            r.DateLost,
		IdentifyingFeatures: r.IdentifyingFeatures,
		Brand:               r.Brand,
		Size:                r.Size,
		BagContents:         r.BagContents,
		Color:               r.Color,
		ContactEmail:        r.ContactEmail,
		ContactPhone:        r.ContactPhone,
		CreatedAt:           r.CreatedAt,
	}
}

// GetByID returns a single report.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LostReport, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lost report query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lost_report", id)
	}
	report := out.toDomain()
	return &report, nil
}

// ListByCategory returns every report of one category, newest first.
func (r *Repo) ListByCategory(ctx context.Context, category string) ([]domain.LostReport, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"category": category}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lost report list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list lost reports by category: %w", err)
	}

	reports := make([]domain.LostReport, len(rows))
	for i, rw := range rows {
		reports[i] = rw.toDomain()
	}
	return reports, nil
}

// Package match implements Match persistence and the pending-match read model
// used by rescans.
package match

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const table = "matches"

// Columns is the select list shared by every match query.
var Columns = []string{
	"id", "item_id", "lost_report_id",
	"category_score", "keyword_score", "date_score", "location_score", "feature_score", "color_score",
	"confidence_score", "status", "notified", "created_at", "updated_at",
}

// Repo provides match persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new match repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

type row struct {
	ID              uuid.UUID `db:"id"`
	ItemID          uuid.UUID `db:"item_id"`
	LostReportID    uuid.UUID `db:"lost_report_id"`
	CategoryScore   float64   `db:"category_score"`
	KeywordScore    float64   `db:"keyword_score"`
	DateScore       float64   `db:"date_score"`
	LocationScore   float64   `db:"location_score"`
	FeatureScore    float64   `db:"feature_score"`
	ColorScore      float64   `db:"color_score"`
	ConfidenceScore int       `db:"confidence_score"`
	Status          string    `db:"status"`
	Notified        bool      `db:"notified"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Match {
	return domain.Match{
		ID:           r.ID,
		ItemID:       r.ItemID,
		LostReportID: r.LostReportID,
		Scores: domain.ScoreBreakdown{
			CategoryScore: r.CategoryScore,
			KeywordScore:  r.KeywordScore,
			DateScore:     r.DateScore,
			LocationScore: r.LocationScore,
			FeatureScore:  r.FeatureScore,
			ColorScore:    r.ColorScore,
			TotalScore:    r.ConfidenceScore,
		},
		ConfidenceScore: r.ConfidenceScore,
		Status:          domain.MatchStatus(r.Status),
		Notified:        r.Notified,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts m unless a match for the same (item, report) pair exists.
// It returns the stored record and whether it was created by this call; an
// existing record is returned unchanged. Zero timestamps are set to now.
func (r *Repo) Upsert(ctx context.Context, m domain.Match) (domain.Match, bool, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = r.now().UTC()
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "item_id", "lost_report_id",
			"category_score", "keyword_score", "date_score", "location_score", "feature_score", "color_score",
			"confidence_score", "status", "notified", "created_at", "updated_at",
		).
		Values(
			m.ID, m.ItemID, m.LostReportID,
			m.Scores.CategoryScore, m.Scores.KeywordScore, m.Scores.DateScore,
			m.Scores.LocationScore, m.Scores.FeatureScore, m.Scores.ColorScore,
			m.ConfidenceScore, string(m.Status), m.Notified, m.CreatedAt, m.UpdatedAt,
		).
		Suffix("ON CONFLICT (item_id, lost_report_id) DO NOTHING RETURNING " + strings.Join(Columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Match{}, false, fmt.Errorf("build match upsert: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var out row
	err = pgxscan.Get(ctx, q, &out, sql, args...)
	if err == nil {
		return out.toDomain(), true, nil
	}
	if !pgxscan.NotFound(err) {
		return domain.Match{}, false, postgres.MapError(err, "match", m.ID)
	}

	existing, err := r.GetByPair(ctx, m.ItemID, m.LostReportID)
	if err != nil {
		return domain.Match{}, false, err
	}
	return existing, false, nil
}

// Update overwrites the scores, status and notified flag of a match.
func (r *Repo) Update(ctx context.Context, m domain.Match) error {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"category_score":   m.Scores.CategoryScore,
			"keyword_score":    m.Scores.KeywordScore,
			"date_score":       m.Scores.DateScore,
			"location_score":   m.Scores.LocationScore,
			"feature_score":    m.Scores.FeatureScore,
			"color_score":      m.Scores.ColorScore,
			"confidence_score": m.ConfidenceScore,
			"status":           string(m.Status),
			"notified":         m.Notified,
			"updated_at":       sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build match update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "match", m.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", m.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a match.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build match delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "match", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single match.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id, false)
}

// GetByIDForUpdate returns a match and locks its row until the surrounding
// transaction ends. Rescans and manual status changes serialise here.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (domain.Match, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id, true)
}

// GetByPair returns the match linking itemID and reportID.
func (r *Repo) GetByPair(ctx context.Context, itemID, reportID uuid.UUID) (domain.Match, error) {
	return r.getOne(ctx, sq.Eq{"item_id": itemID, "lost_report_id": reportID}, itemID, false)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID, forUpdate bool) (domain.Match, error) {
	query := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(where)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.Match{}, fmt.Errorf("build match query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return domain.Match{}, postgres.MapError(err, "match", id)
	}
	return out.toDomain(), nil
}

// ListByItem returns an item's matches, highest confidence first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Match, error) {
	return r.list(ctx, sq.Eq{"item_id": itemID})
}

// ListByReport returns a report's matches, highest confidence first.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	return r.list(ctx, sq.Eq{"lost_report_id": reportID})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.Match, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(where).
		OrderBy("confidence_score DESC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build match list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	matches := make([]domain.Match, len(rows))
	for i, rw := range rows {
		matches[i] = rw.toDomain()
	}
	return matches, nil
}

// ---------------------------------------------------------------------------
// Pending read model
// ---------------------------------------------------------------------------

// pendingRow is a PENDING match joined with the matchable attributes of its
// item and report. The joined columns are NULL when the reference is gone.
type pendingRow struct {
	row

	ItemRefID          *uuid.UUID `db:"i_id"`
	ItemCategory       *string    `db:"i_category"`
	ItemDescription    *string    `db:"i_description"`
	ItemKeywords       []string   `db:"i_keywords"`
	ItemLocation       *string    `db:"i_location"`
	ItemFoundDate      *time.Time `db:"i_found_date"`
	ItemFeatures       *string    `db:"i_identifying_features"`
	ItemBrand          *string    `db:"i_brand"`
	ItemSize           *string    `db:"i_size"`
	ItemBagContents    []string   `db:"i_bag_contents"`
	ItemColor          *string    `db:"i_color"`
	ItemStatus         *string    `db:"i_status"`
	ReportRefID        *uuid.UUID `db:"r_id"`
	ReportOwnerID      *uuid.UUID `db:"r_owner_id"`
	ReportCategory     *string    `db:"r_category"`
	ReportDescription  *string    `db:"r_description"`
	ReportKeywords     []string   `db:"r_keywords"`
	ReportLocation     *string    `db:"r_location"`
	ReportDateLost     *time.Time `db:"r_date_lost"`
	ReportFeatures     *string    `db:"r_identifying_features"`
	ReportBrand        *string    `db:"r_brand"`
	ReportSize         *string    `db:"r_size"`
	ReportBagContents  []string   `db:"r_bag_contents"`
	ReportColor        *string    `db:"r_color"`
	ReportContactEmail *string    `db:"r_contact_email"`
}

var (
	joinedItemColumns = []string{
		"id", "category", "description", "keywords", "location", "found_date",
		"identifying_features", "brand", "size", "bag_contents", "color", "status",
	}
	joinedReportColumns = []string{
		"id", "owner_id", "category", "description", "keywords", "location", "date_lost",
		"identifying_features", "brand", "size", "bag_contents", "color", "contact_email",
	}
)

// ListPendingWithRefs returns every PENDING match together with its item and
// report. Item or Report is nil when the referenced row no longer exists.
func (r *Repo) ListPendingWithRefs(ctx context.Context) ([]domain.MatchWithRefs, error) {
	cols := make([]string, 0, len(Columns)+len(joinedItemColumns)+len(joinedReportColumns))
	for _, c := range Columns {
		cols = append(cols, "m."+c)
	}
	for _, c := range joinedItemColumns {
		cols = append(cols, fmt.Sprintf("i.%s AS i_%s", c, c))
	}
	for _, c := range joinedReportColumns {
		cols = append(cols, fmt.Sprintf("r.%s AS r_%s", c, c))
	}

	sql, args, err := postgres.Builder().
		Select(cols...).
		From(table + " m").
		LeftJoin("items i ON i.id = m.item_id").
		LeftJoin("lost_reports r ON r.id = m.lost_report_id").
		Where(sq.Eq{"m.status": string(domain.MatchStatusPending)}).
		OrderBy("m.created_at ASC", "m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending match query: %w", err)
	}

	var rows []pendingRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list pending matches: %w", err)
	}

	out := make([]domain.MatchWithRefs, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r pendingRow) toDomain() domain.MatchWithRefs {
	m := domain.MatchWithRefs{Match: r.row.toDomain()}

	if r.ItemRefID != nil {
		m.Item = &domain.Item{
			ID:                  *r.ItemRefID,
			Category:            deref(r.ItemCategory),
			Description:         deref(r.ItemDescription),
			Keywords:            r.ItemKeywords,
			Location:            deref(r.ItemLocation),
			FoundDate:           deref(r.ItemFoundDate),
			IdentifyingFeatures: deref(r.ItemFeatures),
			Brand:               deref(r.ItemBrand),
			Size:                deref(r.ItemSize),
			BagContents:         r.ItemBagContents,
			Color:               deref(r.ItemColor),
			Status:              domain.ItemStatus(deref(r.ItemStatus)),
		}
	}
	if r.ReportRefID != nil {
		m.Report = &domain.LostReport{
			ID:                  *r.ReportRefID,
			OwnerID:             deref(r.ReportOwnerID),
			Category:            deref(r.ReportCategory),
			Description:         deref(r.ReportDescription),
			Keywords:            r.ReportKeywords,
			Location:            deref(r.ReportLocation),
			DateLost:            deref(r.ReportDateLost),
			IdentifyingFeatures: deref(r.ReportFeatures),
			Brand:               deref(r.ReportBrand),
			Size:                deref(r.ReportSize),
			BagContents:         r.ReportBagContents,
			Color:               deref(r.ReportColor),
			ContactEmail:        deref(r.ReportContactEmail),
		}
	}
	return m
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

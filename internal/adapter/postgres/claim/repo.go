// Package claim implements Claim persistence using PostgreSQL.
// Every read path excludes soft-deleted claims.
package claim

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

const table = "claims"

// Columns is the select list shared by every claim query.
var Columns = []string{
	"id", "item_id", "claimant_id", "anonymous_email", "anonymous_token_hash", "description", "status",
	"proof_documents", "fraud_risk_score", "fraud_flags", "challenges",
	"verified_by", "verified_at", "verification_notes", "rejected_by", "rejected_at", "rejection_reason",
	"deleted_at", "created_at", "updated_at",
}

// notDeleted is applied to every read.
var notDeleted = sq.Eq{"deleted_at": nil}

// Repo provides claim persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new claim repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID                 uuid.UUID  `db:"id"`
	ItemID             uuid.UUID  `db:"item_id"`
	ClaimantID         *uuid.UUID `db:"claimant_id"`
	AnonymousEmail     *string    `db:"anonymous_email"`
	AnonymousTokenHash *string    `db:"anonymous_token_hash"`
	Description        string     `db:"description"`
	Status             string     `db:"status"`
	ProofDocuments     []byte     `db:"proof_documents"`
	FraudRiskScore     int        `db:"fraud_risk_score"`
	FraudFlags         []string   `db:"fraud_flags"`
	Challenges         []byte     `db:"challenges"`
	VerifiedBy         *uuid.UUID `db:"verified_by"`
	VerifiedAt         *time.Time `db:"verified_at"`
	VerificationNotes  *string    `db:"verification_notes"`
	RejectedBy         *uuid.UUID `db:"rejected_by"`
	RejectedAt         *time.Time `db:"rejected_at"`
	RejectionReason    *string    `db:"rejection_reason"`
	DeletedAt          *time.Time `db:"deleted_at"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

func (r row) toDomain() (domain.Claim, error) {
	c := domain.Claim{
		ID:                 r.ID,
		ItemID:             r.ItemID,
		ClaimantID:         r.ClaimantID,
		AnonymousEmail:     r.AnonymousEmail,
		AnonymousTokenHash: r.AnonymousTokenHash,
		Description:        r.Description,
		Status:             domain.ClaimStatus(r.Status),
		FraudRiskScore:     r.FraudRiskScore,
		FraudFlags:         r.FraudFlags,
		VerifiedBy:         r.VerifiedBy,
		VerifiedAt:         r.VerifiedAt,
		VerificationNotes:  r.VerificationNotes,
		RejectedBy:         r.RejectedBy,
		RejectedAt:         r.RejectedAt,
		RejectionReason:    r.RejectionReason,
		DeletedAt:          r.DeletedAt,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if len(r.ProofDocuments) > 0 {
		if err := json.Unmarshal(r.ProofDocuments, &c.ProofDocuments); err != nil {
			return domain.Claim{}, fmt.Errorf("claim %s unmarshal proof_documents: %w", r.ID, err)
		}
	}
	if len(r.Challenges) > 0 {
		if err := json.Unmarshal(r.Challenges, &c.Challenges); err != nil {
			return domain.Claim{}, fmt.Errorf("claim %s unmarshal challenges: %w", r.ID, err)
		}
	}
	return c, nil
}

// marshalList encodes a slice as a JSON array, never as null.
func marshalList[T any](v []T) ([]byte, error) {
	if v == nil {
		v = []T{}
	}
	return json.Marshal(v)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new claim.
func (r *Repo) Create(ctx context.Context, c domain.Claim) error {
	proofs, err := marshalList(c.ProofDocuments)
	if err != nil {
		return fmt.Errorf("claim marshal proof_documents: %w", err)
	}
	challenges, err := marshalList(c.Challenges)
	if err != nil {
		return fmt.Errorf("claim marshal challenges: %w", err)
	}
	flags := c.FraudFlags
	if flags == nil {
		flags = []string{}
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(
			"id", "item_id", "claimant_id", "anonymous_email", "anonymous_token_hash", "description",
			"status", "proof_documents", "fraud_risk_score", "fraud_flags", "challenges",
			"created_at", "updated_at",
		).
		Values(
			c.ID, c.ItemID, c.ClaimantID, c.AnonymousEmail, c.AnonymousTokenHash, c.Description,
			string(c.Status), proofs, c.FraudRiskScore, flags, challenges,
			c.CreatedAt, c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build claim insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "claim", c.ID)
	}
	return nil
}

// Update writes the mutable state of a claim: status, proofs, challenges and
// verification/rejection metadata.
func (r *Repo) Update(ctx context.Context, c domain.Claim) error {
	proofs, err := marshalList(c.ProofDocuments)
	if err != nil {
		return fmt.Errorf("claim marshal proof_documents: %w", err)
	}
	challenges, err := marshalList(c.Challenges)
	if err != nil {
		return fmt.Errorf("claim marshal challenges: %w", err)
	}

	return r.update(ctx, c.ID, map[string]any{
		"status":             string(c.Status),
		"proof_documents":    proofs,
		"challenges":         challenges,
		"verified_by":        c.VerifiedBy,
		"verified_at":        c.VerifiedAt,
		"verification_notes": c.VerificationNotes,
		"rejected_by":        c.RejectedBy,
		"rejected_at":        c.RejectedAt,
		"rejection_reason":   c.RejectionReason,
		"updated_at":         c.UpdatedAt,
	})
}

// UpdateFraud stores a fraud assessment on the claim.
func (r *Repo) UpdateFraud(ctx context.Context, id uuid.UUID, a domain.FraudAssessment) error {
	flags := a.Flags
	if flags == nil {
		flags = []string{}
	}
	return r.update(ctx, id, map[string]any{
		"fraud_risk_score": a.Score,
		"fraud_flags":      flags,
		"updated_at":       sq.Expr("now()"),
	})
}

// SoftDelete marks the claim deleted. Deleted claims disappear from every read.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.update(ctx, id, map[string]any{
		"deleted_at": at,
		"updated_at": at,
	})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) error {
	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		Where(notDeleted).
		ToSql()
	if err != nil {
		return fmt.Errorf("build claim update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "claim", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("claim %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a claim that has not been deleted.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate is GetByID with the claim row locked.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Claim, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Claim, error) {
	query := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		Where(notDeleted)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build claim query: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, postgres.MapError(err, "claim", id)
	}
	c, err := out.toDomain()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByItem returns all claims on an item, oldest first.
func (r *Repo) ListByItem(ctx context.Context, itemID uuid.UUID) ([]domain.Claim, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From(table).
		Where(sq.Eq{"item_id": itemID}).
		Where(notDeleted).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build claim list query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list claims by item: %w", err)
	}

	claims := make([]domain.Claim, len(rows))
	for i, rw := range rows {
		c, err := rw.toDomain()
		if err != nil {
			return nil, err
		}
		claims[i] = c
	}
	return claims, nil
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedItem inserts an AVAILABLE item in the given category.
// Category is made unique when empty so tests do not see each other's rows.
func SeedItem(t *testing.T, pool *pgxpool.Pool, category string) domain.Item {
	t.Helper()
	ctx := context.Background()

	if category == "" {
		category = "CAT-" + uniqueSuffix()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:                uuid.New(),
		Category:          category,
		Description:       "Black leather wallet",
		Keywords:          []string{"wallet", "black", "leather"},
		Location:          "Terminal 1",
		FoundDate:         now.AddDate(0, 0, -1),
		Brand:             "Fossil",
		Color:             "black",
		BagContents:       []string{},
		SecretIdentifiers: []string{"initials JD inside"},
		Status:            domain.ItemStatusAvailable,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, category, description, keywords, location, found_date, brand, color,
		                    bag_contents, secret_identifiers, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		item.ID, item.Category, item.Description, item.Keywords, item.Location, item.FoundDate,
		item.Brand, item.Color, item.BagContents, item.SecretIdentifiers, string(item.Status),
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}
	return item
}

// SeedLostReport inserts a lost report in the given category.
func SeedLostReport(t *testing.T, pool *pgxpool.Pool, category string) domain.LostReport {
	t.Helper()
	ctx := context.Background()

	if category == "" {
		category = "CAT-" + uniqueSuffix()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	report := domain.LostReport{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Category:     category,
		Description:  "Lost my black wallet",
		Keywords:     []string{"wallet", "black"},
		Location:     "Terminal 1",
		DateLost:     now.AddDate(0, 0, -2),
		Color:        "black",
		BagContents:  []string{},
		ContactEmail: "owner-" + uniqueSuffix() + "@example.com",
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO lost_reports (id, owner_id, category, description, keywords, location, date_lost,
		                           color, bag_contents, contact_email, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		report.ID, report.OwnerID, report.Category, report.Description, report.Keywords, report.Location,
		report.DateLost, report.Color, report.BagContents, report.ContactEmail, report.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLostReport: %v", err)
	}
	return report
}

// SeedClaim inserts a FILED claim by claimantID on itemID.
func SeedClaim(t *testing.T, pool *pgxpool.Pool, itemID, claimantID uuid.UUID) domain.Claim {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	claim := domain.Claim{
		ID:          uuid.New(),
		ItemID:      itemID,
		ClaimantID:  &claimantID,
		Description: "it is mine " + uniqueSuffix(),
		Status:      domain.ClaimStatusFiled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO claims (id, item_id, claimant_id, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		claim.ID, claim.ItemID, claim.ClaimantID, claim.Description, string(claim.Status),
		claim.CreatedAt, claim.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClaim: %v", err)
	}
	return claim
}

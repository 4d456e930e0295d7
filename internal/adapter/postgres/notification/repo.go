// Package notification implements the notification outbox using PostgreSQL.
// The delivery service reads undelivered rows and marks them delivered.
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lostfound-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "recipient_id", "audience", "event", "payload", "dedupe_key", "created_at"}

// Repo provides outbox persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	now func() time.Time
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, now: time.Now}
}

// Insert writes n to the outbox. A row with the same dedupe key is left
// untouched and inserted reports false.
func (r *Repo) Insert(ctx context.Context, n domain.Notification) (inserted bool, err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now().UTC()
	}
	if n.DedupeKey == "" {
		n.DedupeKey = n.ID.String()
	}

	payload := n.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("notification marshal payload: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(n.ID, n.RecipientID, string(n.Audience), string(n.Event), payloadJSON, n.DedupeKey, n.CreatedAt).
		Suffix("ON CONFLICT (dedupe_key) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build notification insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "notification", n.ID)
	}
	return tag.RowsAffected() > 0, nil
}

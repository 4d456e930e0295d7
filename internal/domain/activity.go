package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one append-only entry of the activity log. Entries are
// evidence for fraud scoring and an audit trail for state changes.
type Activity struct {
	ID         uuid.UUID
	UserID     *uuid.UUID
	Action     ActivityAction
	EntityType EntityType
	EntityID   *uuid.UUID
	Metadata   map[string]any
	CreatedAt  time.Time
}

// Notification is a fire-and-forget message handed to the delivery
// collaborator. DedupeKey makes repeated enqueues of the same event idempotent.
type Notification struct {
	ID          uuid.UUID
	RecipientID *uuid.UUID
	Audience    Audience
	Event       NotificationEvent
	Payload     map[string]any
	DedupeKey   string
	CreatedAt   time.Time
}

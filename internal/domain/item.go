package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is a found item held by the lost-and-found office.
// Items are owned by the intake collaborator; this service only changes
// Status and ClaimedBy.
type Item struct {
	ID                  uuid.UUID
	FinderID            *uuid.UUID
	Category            string
	Description         string
	Keywords            []string
	Location            string
	FoundDate           time.Time
	IdentifyingFeatures string
	Brand               string
	Size                string
	BagContents         []string
	Color               string
	// SecretIdentifiers are known only to the office and the true owner.
	// They must never leave the service in a public representation.
	SecretIdentifiers []string
	Status            ItemStatus
	ClaimedBy         *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasSecrets reports whether at least one non-blank secret identifier is recorded.
func (i *Item) HasSecrets() bool {
	for _, s := range i.SecretIdentifiers {
		if NormalizeText(s) != "" {
			return true
		}
	}
	return false
}

// Public returns a copy of the item without secret identifiers.
func (i Item) Public() Item {
	i.SecretIdentifiers = nil
	return i
}

// LostReport is an owner's description of something they lost.
type LostReport struct {
	ID                  uuid.UUID
	OwnerID             uuid.UUID
	Category            string
	Description         string
	Keywords            []string
	Location            string
	DateLost            time.Time
	IdentifyingFeatures string
	Brand               string
	Size                string
	BagContents         []string
	Color               string
	ContactEmail        string
	ContactPhone        *string
	CreatedAt           time.Time
}

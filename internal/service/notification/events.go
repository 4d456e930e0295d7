package notification

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

// MatchNotification builds a notification to the owner of the matched report.
// The dedupe key makes repeated sends of the same event for the same match
// collapse into one outbox row.
func MatchNotification(event domain.NotificationEvent, ownerID uuid.UUID, m domain.Match) domain.Notification {
	return domain.Notification{
		RecipientID: &ownerID,
		Audience:    domain.AudienceUser,
		Event:       event,
		Payload: map[string]any{
			"match_id":         m.ID.String(),
			"item_id":          m.ItemID.String(),
			"lost_report_id":   m.LostReportID.String(),
			"confidence_score": m.ConfidenceScore,
		},
		DedupeKey: event.String() + ":" + m.ID.String(),
	}
}

// ClaimNotification builds a claim event. A nil recipient addresses staff.
func ClaimNotification(event domain.NotificationEvent, recipientID *uuid.UUID, c *domain.Claim, extra map[string]any) domain.Notification {
	payload := map[string]any{
		"claim_id": c.ID.String(),
		"item_id":  c.ItemID.String(),
		"status":   c.Status.String(),
	}
	for k, v := range extra {
		payload[k] = v
	}

	audience := domain.AudienceUser
	if recipientID == nil {
		audience = domain.AudienceStaff
	}
	return domain.Notification{
		RecipientID: recipientID,
		Audience:    audience,
		Event:       event,
		Payload:     payload,
		DedupeKey:   event.String() + ":" + c.ID.String(),
	}
}

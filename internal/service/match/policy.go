package match

import "github.com/heartmarshall/lostfound-backend/internal/domain"

// applyPolicy sets status and the notified flag for a freshly scored match
// and returns the event to send, or "" when nothing should be sent.
//
// At or above the auto-match threshold the match is auto-confirmed and the
// owner is told. Otherwise the owner receives a single "potential match"
// notice; later rescans never repeat it.
func applyPolicy(m *domain.Match, cfg domain.Settings) domain.NotificationEvent {
	switch {
	case m.ConfidenceScore >= cfg.AutoMatchThreshold:
		wasAuto := m.Status == domain.MatchStatusAutoConfirmed
		m.Status = domain.MatchStatusAutoConfirmed
		if wasAuto && m.Notified {
			return ""
		}
		m.Notified = true
		return domain.EventMatchAutoConfirmed
	case m.ConfidenceScore >= cfg.RejectThreshold && !m.Notified:
		m.Notified = true
		return domain.EventMatchPotential
	}
	return ""
}

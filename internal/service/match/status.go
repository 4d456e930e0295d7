package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/pkg/ctxutil"
)

// UpdateMatchStatus applies a manual CONFIRMED or REJECTED decision. Staff only.
// Confirming a match whose owner was never told sends the confirmation.
func (s *Service) UpdateMatchStatus(ctx context.Context, id uuid.UUID, status domain.MatchStatus) (domain.Match, error) {
	staffID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Match{}, domain.ErrUnauthorized
	}
	if !ctxutil.IsStaffCtx(ctx) {
		return domain.Match{}, domain.ErrForbidden
	}
	if !status.IsManualOverride() {
		return domain.Match{}, domain.NewValidationError("status", "must be CONFIRMED or REJECTED")
	}

	var (
		m       domain.Match
		pending *pendingNotification
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		m, err = s.matches.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}
		old := m.Status
		m.Status = status

		if status == domain.MatchStatusConfirmed && !m.Notified {
			report, err := s.reports.GetByID(txCtx, m.LostReportID)
			switch {
			case err == nil:
				m.Notified = true
				pending = &pendingNotification{event: domain.EventMatchConfirmed, ownerID: report.OwnerID}
			case errors.Is(err, domain.ErrNotFound):
				s.log.WarnContext(txCtx, "confirmed match has no lost report",
					slog.String("match_id", m.ID.String()))
			default:
				return fmt.Errorf("get lost report: %w", err)
			}
		}

		if err := s.matches.Update(txCtx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			UserID:     &staffID,
			Action:     domain.ActivityMatchStatusChanged,
			EntityType: domain.EntityTypeMatch,
			EntityID:   &m.ID,
			Metadata: map[string]any{
				"status": map[string]any{"old": old.String(), "new": status.String()},
			},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Match{}, err
	}

	if pending != nil {
		pending.match = m
		s.notify(ctx, pending)
	}

	s.log.InfoContext(ctx, "match status updated",
		slog.String("user_id", staffID.String()),
		slog.String("match_id", m.ID.String()),
		slog.String("status", status.String()),
	)
	return m, nil
}

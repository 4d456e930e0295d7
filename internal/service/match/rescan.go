package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/scoring"
)

// RescanResult summarises a ReScanAll run.
type RescanResult struct {
	Scanned  int
	Updated  int
	Promoted int
	Deleted  int
	Skipped  int
	Failed   int
}

// ReScanAll recomputes every PENDING match with the live settings. Matches
// that fall below the reject threshold are deleted, those reaching the
// auto-match threshold are promoted, the rest get fresh sub-scores.
// Matches whose item or report is gone are skipped. A failure on one match
// is logged and counted; it does not abort the run.
func (s *Service) ReScanAll(ctx context.Context) (RescanResult, error) {
	cfg, err := s.settings.GetConfig(ctx)
	if err != nil {
		return RescanResult{}, fmt.Errorf("get settings: %w", err)
	}

	pending, err := s.matches.ListPendingWithRefs(ctx)
	if err != nil {
		return RescanResult{}, fmt.Errorf("list pending matches: %w", err)
	}

	var updated, promoted, deleted, skipped, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(s.cfg.RescanConcurrency)
	for _, mr := range pending {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome, err := s.rescanOne(ctx, mr, cfg)
			if err != nil {
				failed.Add(1)
				s.log.ErrorContext(ctx, "rescan match",
					slog.String("match_id", mr.ID.String()),
					slog.String("error", err.Error()),
				)
				return nil
			}
			switch outcome {
			case rescanUpdated:
				updated.Add(1)
			case rescanPromoted:
				promoted.Add(1)
			case rescanDeleted:
				deleted.Add(1)
			case rescanSkipped:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	result := RescanResult{
		Scanned:  len(pending),
		Updated:  int(updated.Load()),
		Promoted: int(promoted.Load()),
		Deleted:  int(deleted.Load()),
		Skipped:  int(skipped.Load()),
		Failed:   int(failed.Load()),
	}

	s.log.InfoContext(ctx, "rescan finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("promoted", result.Promoted),
		slog.Int("deleted", result.Deleted),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
	)

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// errNoLongerPending marks a match that staff decided on after the rescan
// read it.
var errNoLongerPending = errors.New("match no longer pending")

// ensurePending locks the match inside the rescan transaction and checks it
// is still PENDING. The lock holds until commit, so a concurrent manual
// decision either lands first and is seen here or waits for the rescan.
func (s *Service) ensurePending(ctx context.Context, id uuid.UUID) error {
	cur, err := s.matches.GetByIDForUpdate(ctx, id)
	if err != nil {
		return fmt.Errorf("get match: %w", err)
	}
	if cur.Status != domain.MatchStatusPending {
		return errNoLongerPending
	}
	return nil
}

type rescanOutcome int

const (
	rescanUpdated rescanOutcome = iota
	rescanPromoted
	rescanDeleted
	rescanSkipped
)

func (s *Service) rescanOne(ctx context.Context, mr domain.MatchWithRefs, cfg domain.Settings) (rescanOutcome, error) {
	if mr.Item == nil || mr.Report == nil {
		s.log.WarnContext(ctx, "rescan skipped match with missing reference",
			slog.String("match_id", mr.ID.String()),
			slog.Bool("item_missing", mr.Item == nil),
			slog.Bool("report_missing", mr.Report == nil),
		)
		return rescanSkipped, nil
	}

	breakdown := scoring.Score(mr.Item, mr.Report, cfg.Weights)
	m := mr.Match

	if breakdown.TotalScore < cfg.RejectThreshold {
		err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			if err := s.ensurePending(txCtx, m.ID); err != nil {
				return err
			}
			if err := s.matches.Delete(txCtx, m.ID); err != nil {
				return fmt.Errorf("delete match: %w", err)
			}
			if err := s.activity.Log(txCtx, domain.Activity{
				Action:     domain.ActivityMatchDeleted,
				EntityType: domain.EntityTypeMatch,
				EntityID:   &m.ID,
				Metadata: map[string]any{
					"confidence_score": breakdown.TotalScore,
					"reject_threshold": cfg.RejectThreshold,
				},
			}); err != nil {
				return fmt.Errorf("activity log: %w", err)
			}
			return nil
		})
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, errNoLongerPending) {
			return rescanSkipped, nil
		}
		if err != nil {
			return 0, err
		}
		return rescanDeleted, nil
	}

	m.Scores = breakdown
	m.ConfidenceScore = breakdown.TotalScore
	event := applyPolicy(&m, cfg)
	outcome := rescanUpdated
	if m.Status == domain.MatchStatusAutoConfirmed {
		outcome = rescanPromoted
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensurePending(txCtx, m.ID); err != nil {
			return err
		}
		if err := s.matches.Update(txCtx, m); err != nil {
			return fmt.Errorf("update match: %w", err)
		}
		if outcome != rescanPromoted {
			return nil
		}
		if err := s.activity.Log(txCtx, domain.Activity{
			Action:     domain.ActivityMatchStatusChanged,
			EntityType: domain.EntityTypeMatch,
			EntityID:   &m.ID,
			Metadata: map[string]any{
				"status":           map[string]any{"old": mr.Status.String(), "new": m.Status.String()},
				"confidence_score": m.ConfidenceScore,
			},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, errNoLongerPending) {
		return rescanSkipped, nil
	}
	if err != nil {
		return 0, err
	}

	if event != "" {
		s.notify(ctx, &pendingNotification{event: event, ownerID: mr.Report.OwnerID, match: m})
	}
	return outcome, nil
}

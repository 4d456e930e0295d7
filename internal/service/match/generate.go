package match

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/scoring"
)

// candidate is one item/report pair to score.
type candidate struct {
	item   *domain.Item
	report *domain.LostReport
}

// GenerateMatches scores the source against every same-category counterpart
// and persists the pairs at or above the reject threshold. Pairs that already
// have a match are returned as stored, without re-scoring. The result is
// ordered by confidence, highest first.
func (s *Service) GenerateMatches(ctx context.Context, src domain.MatchSource) ([]domain.Match, error) {
	if (src.ItemID == nil) == (src.LostReportID == nil) {
		return nil, domain.NewValidationError("source", "exactly one of item_id or lost_report_id is required")
	}

	candidates, err := s.loadCandidates(ctx, src)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	var (
		mu      sync.Mutex
		results = make([]domain.Match, 0, len(candidates))
		created int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.GenerateConcurrency)
	for _, c := range candidates {
		g.Go(func() error {
			m, isNew, ok, err := s.persistCandidate(gctx, c, cfg)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			mu.Lock()
			results = append(results, m)
			if isNew {
				created++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b domain.Match) int {
		if c := cmp.Compare(b.ConfidenceScore, a.ConfidenceScore); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	s.log.InfoContext(ctx, "matches generated",
		slog.String("source", sourceString(src)),
		slog.Int("candidates", len(candidates)),
		slog.Int("matches", len(results)),
		slog.Int("created", created),
	)
	return results, nil
}

func (s *Service) loadCandidates(ctx context.Context, src domain.MatchSource) ([]candidate, error) {
	if src.ItemID != nil {
		item, err := s.items.GetByID(ctx, *src.ItemID)
		if err != nil {
			return nil, fmt.Errorf("get item: %w", err)
		}
		reports, err := s.reports.ListByCategory(ctx, item.Category)
		if err != nil {
			return nil, fmt.Errorf("list lost reports: %w", err)
		}
		out := make([]candidate, len(reports))
		for i := range reports {
			out[i] = candidate{item: item, report: &reports[i]}
		}
		return out, nil
	}

	report, err := s.reports.GetByID(ctx, *src.LostReportID)
	if err != nil {
		return nil, fmt.Errorf("get lost report: %w", err)
	}
	items, err := s.items.ListAvailableByCategory(ctx, report.Category)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	out := make([]candidate, len(items))
	for i := range items {
		out[i] = candidate{item: &items[i], report: report}
	}
	return out, nil
}

// persistCandidate scores one pair and upserts it in its own transaction.
// ok is false when the pair scored below the reject threshold.
func (s *Service) persistCandidate(ctx context.Context, c candidate, cfg domain.Settings) (m domain.Match, created, ok bool, err error) {
	breakdown := scoring.Score(c.item, c.report, cfg.Weights)
	if breakdown.TotalScore < cfg.RejectThreshold {
		return domain.Match{}, false, false, nil
	}

	now := s.now().UTC()
	var pending *pendingNotification
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var upsertErr error
		m, created, upsertErr = s.matches.Upsert(txCtx, domain.Match{
			ID:              uuid.New(),
			ItemID:          c.item.ID,
			LostReportID:    c.report.ID,
			Scores:          breakdown,
			ConfidenceScore: breakdown.TotalScore,
			Status:          domain.MatchStatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if upsertErr != nil {
			return fmt.Errorf("upsert match: %w", upsertErr)
		}
		if !created {
			return nil
		}

		if event := applyPolicy(&m, cfg); event != "" {
			if err := s.matches.Update(txCtx, m); err != nil {
				return fmt.Errorf("update match: %w", err)
			}
			pending = &pendingNotification{event: event, ownerID: c.report.OwnerID, match: m}
		}

		if err := s.activity.Log(txCtx, domain.Activity{
			Action:     domain.ActivityMatchCreated,
			EntityType: domain.EntityTypeMatch,
			EntityID:   &m.ID,
			Metadata: map[string]any{
				"item_id":          m.ItemID.String(),
				"lost_report_id":   m.LostReportID.String(),
				"confidence_score": m.ConfidenceScore,
				"status":           m.Status.String(),
			},
		}); err != nil {
			return fmt.Errorf("activity log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Match{}, false, false, err
	}

	s.notify(ctx, pending)
	return m, created, true, nil
}

func sourceString(src domain.MatchSource) string {
	if src.ItemID != nil {
		return "item:" + src.ItemID.String()
	}
	return "lost_report:" + src.LostReportID.String()
}

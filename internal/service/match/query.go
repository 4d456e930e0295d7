package match

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

// GetMatchesForItem returns the matches of an item, highest confidence first.
func (s *Service) GetMatchesForItem(ctx context.Context, itemID uuid.UUID) ([]domain.Match, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	matches, err := s.matches.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// GetMatchesForReport returns the matches of a lost report, highest
// confidence first.
func (s *Service) GetMatchesForReport(ctx context.Context, reportID uuid.UUID) ([]domain.Match, error) {
	if _, err := s.reports.GetByID(ctx, reportID); err != nil {
		return nil, fmt.Errorf("get lost report: %w", err)
	}
	matches, err := s.matches.ListByReport(ctx, reportID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScoreBreakdown holds the weighted per-dimension contributions to a match
// score. Each component is already multiplied by its weight, so TotalScore is
// the rounded sum.
type ScoreBreakdown struct {
	CategoryScore float64
	KeywordScore  float64
	DateScore     float64
	LocationScore float64
	FeatureScore  float64
	ColorScore    float64
	TotalScore    int
}

// Match links a found item to a lost report with a confidence estimate.
// The (ItemID, LostReportID) pair is unique.
type Match struct {
	ID              uuid.UUID
	ItemID          uuid.UUID
	LostReportID    uuid.UUID
	Scores          ScoreBreakdown
	ConfidenceScore int
	Status          MatchStatus
	Notified        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MatchWithRefs is the joined read model used by rescans.
// Item or Report is nil when the referenced row no longer exists.
type MatchWithRefs struct {
	Match
	Item   *Item
	Report *LostReport
}

// MatchSource identifies what triggered match generation. Exactly one of the
// fields must be set.
type MatchSource struct {
	ItemID       *uuid.UUID
	LostReportID *uuid.UUID
}

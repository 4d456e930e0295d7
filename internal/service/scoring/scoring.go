// Package scoring implements the deterministic multi-signal similarity score
// between a found item and a lost report.
//
// Every dimension produces a raw similarity in [0, 100] which is multiplied by
// its weight. Candidates are only compared within one category, so the
// category dimension always contributes its full weight.
package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const (
	// DateWindowDays is the distance at which the date score decays to zero.
	DateWindowDays = 30

	// descriptionTokenMinLen filters short words when falling back to
	// description tokens for the keyword dimension.
	descriptionTokenMinLen = 3

	// containedLocationSimilarity is used when one location contains the other
	// ("terminal 1" vs "terminal 1 gate b").
	containedLocationSimilarity = 0.9

	// Feature blend shares. They sum to 100 and do not depend on Weights.
	featureTextShare     = 15.0
	featureBrandShare    = 55.0
	featureSizeShare     = 22.0
	featureBagShare      = 8.0
	brandSubstringCredit = 0.8

	colorExact   = 100.0
	colorPartial = 50.0
)

// Score computes the weighted breakdown for one item/report pair.
// It performs no I/O and is deterministic for identical inputs.
//
// TotalScore is the rounded sum of the weighted components, clamped to
// [0, 100] so that inconsistent weight vectors can never produce an
// out-of-range confidence.
func Score(item *domain.Item, report *domain.LostReport, w domain.Weights) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		CategoryScore: 100 * w.Category,
		KeywordScore:  100 * keywordSimilarity(item, report) * w.Keyword,
		DateScore:     100 * dateSimilarity(item.FoundDate, report.DateLost) * w.Date,
		LocationScore: 100 * LocationSimilarity(item.Location, report.Location) * w.Location,
		FeatureScore:  featureSimilarity(item, report) * w.Feature,
		ColorScore:    colorSimilarity(item.Color, report.Color) * w.Color,
	}

	sum := b.CategoryScore + b.KeywordScore + b.DateScore + b.LocationScore + b.FeatureScore + b.ColorScore
	b.TotalScore = clampScore(int(math.Round(sum)))
	return b
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

func keywordSimilarity(item *domain.Item, report *domain.LostReport) float64 {
	return Jaccard(
		keywordTokens(item.Keywords, item.Description),
		keywordTokens(report.Keywords, report.Description),
	)
}

// keywordTokens uses the explicit keyword set and falls back to description
// words when no keywords were recorded.
func keywordTokens(keywords []string, description string) map[string]struct{} {
	set := domain.TokenSet(keywords, 1)
	if len(set) > 0 {
		return set
	}
	return domain.TokenSet([]string{description}, descriptionTokenMinLen)
}

// dateSimilarity decays linearly from 1 (same calendar day) to 0 at
// DateWindowDays apart.
func dateSimilarity(found, lost time.Time) float64 {
	if found.IsZero() || lost.IsZero() {
		return 0
	}
	days := math.Abs(float64(calendarDay(found).Sub(calendarDay(lost)) / (24 * time.Hour)))
	if days == 0 {
		return 1
	}
	return math.Max(0, 1-days/DateWindowDays)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocationSimilarity compares two free-text locations and returns a value in [0, 1].
func LocationSimilarity(a, b string) float64 {
	a, b = domain.NormalizeText(a), domain.NormalizeText(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return containedLocationSimilarity
	}
	return EditSimilarity(a, b)
}

// EditSimilarity returns (maxLen - editDistance) / maxLen over runes, in [0, 1].
// Two empty strings have similarity 0.
func EditSimilarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return float64(maxLen-dist) / float64(maxLen)
}

// featureSimilarity blends identifying features, brand, size and bag contents
// into a raw score in [0, 100]. A sub-component contributes only when both
// sides provide the attribute.
func featureSimilarity(item *domain.Item, report *domain.LostReport) float64 {
	var score float64

	if strings.TrimSpace(item.IdentifyingFeatures) != "" && strings.TrimSpace(report.IdentifyingFeatures) != "" {
		score += featureTextShare * Jaccard(
			domain.TokenSet([]string{item.IdentifyingFeatures}, 1),
			domain.TokenSet([]string{report.IdentifyingFeatures}, 1),
		)
	}

	itemBrand, reportBrand := domain.NormalizeText(item.Brand), domain.NormalizeText(report.Brand)
	if itemBrand != "" && reportBrand != "" {
		switch {
		case itemBrand == reportBrand:
			score += featureBrandShare
		case strings.Contains(itemBrand, reportBrand) || strings.Contains(reportBrand, itemBrand):
			score += featureBrandShare * brandSubstringCredit
		}
	}

	itemSize, reportSize := domain.NormalizeText(item.Size), domain.NormalizeText(report.Size)
	if itemSize != "" && reportSize != "" && itemSize == reportSize {
		score += featureSizeShare
	}

	itemBag, reportBag := domain.TokenSet(item.BagContents, 1), domain.TokenSet(report.BagContents, 1)
	if len(itemBag) > 0 && len(reportBag) > 0 {
		score += featureBagShare * Jaccard(itemBag, reportBag)
	}

	return score
}

// colorSimilarity returns 100 for an exact match, 50 when the colours share a
// word ("dark blue" vs "blue") and 0 otherwise.
func colorSimilarity(a, b string) float64 {
	a, b = domain.NormalizeText(a), domain.NormalizeText(b)
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return colorExact
	}
	if Jaccard(domain.TokenSet([]string{a}, 1), domain.TokenSet([]string{b}, 1)) > 0 {
		return colorPartial
	}
	return 0
}

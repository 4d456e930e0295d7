// Package challenge issues and grades identity questions that only the true
// owner of an item should be able to answer.
package challenge

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/scoring"
)

const (
	// PassThreshold is the minimum similarity (0-100) for an answer to pass.
	PassThreshold = 75.0

	// MaxQuestionLength bounds staff-written questions.
	MaxQuestionLength = 500

	secretMarkQuestion = "Please describe any unique mark, engraving or detail on the item that only the owner would know."
	colorQuestion      = "What colour is the item?"
)

// AutoIssue returns the challenge issued automatically when a claim is filed,
// or nil when the item carries nothing to ask about. Secret identifiers take
// precedence over colour.
func AutoIssue(item *domain.Item, now time.Time) *domain.Challenge {
	var kind domain.ChallengeKind
	var question string

	switch {
	case item.HasSecrets():
		kind, question = domain.ChallengeKindSecretMark, secretMarkQuestion
	case domain.NormalizeText(item.Color) != "":
		kind, question = domain.ChallengeKindColor, colorQuestion
	default:
		return nil
	}

	return &domain.Challenge{
		ID:          uuid.New(),
		Kind:        kind,
		Question:    question,
		ConductedAt: now,
	}
}

// NewCustom builds a staff-written challenge.
func NewCustom(question string, staffID uuid.UUID, now time.Time) (domain.Challenge, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return domain.Challenge{}, domain.NewValidationError("question", "required")
	}
	if len([]rune(question)) > MaxQuestionLength {
		return domain.Challenge{}, domain.NewValidationError("question", "too long")
	}
	return domain.Challenge{
		ID:          uuid.New(),
		Kind:        domain.ChallengeKindCustom,
		Question:    question,
		ConductedAt: now,
		ConductedBy: &staffID,
	}, nil
}

// Candidates returns the reference answers a challenge is graded against.
// Colour challenges grade against the item colour, everything else against
// the item's secret identifiers.
func Candidates(ch *domain.Challenge, item *domain.Item) []string {
	var raw []string
	if ch.Kind == domain.ChallengeKindColor {
		raw = []string{item.Color}
	} else {
		raw = item.SecretIdentifiers
	}

	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if n := normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Grade compares answer to every candidate and returns the best similarity in
// [0, 100] and whether it reaches PassThreshold.
func Grade(answer string, candidates []string) (float64, bool) {
	a := normalize(answer)
	if a == "" {
		return 0, false
	}

	best := 0.0
	for _, c := range candidates {
		if s := scoring.EditSimilarity(a, normalize(c)) * 100; s > best {
			best = s
		}
	}
	return best, best >= PassThreshold
}

// Answer grades answer against the item and records the result on ch.
// A challenge may be answered only once.
func Answer(ch *domain.Challenge, item *domain.Item, answer string, now time.Time) error {
	if ch.IsAnswered() {
		return domain.NewValidationError("challenge", "already answered")
	}
	if strings.TrimSpace(answer) == "" {
		return domain.NewValidationError("answer", "required")
	}

	candidates := Candidates(ch, item)
	if len(candidates) == 0 {
		return domain.NewValidationError("challenge", "no secrets configured")
	}

	score, passed := Grade(answer, candidates)
	ch.Answer = &answer
	ch.MatchScore = &score
	ch.Passed = &passed
	ch.AnsweredAt = &now
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

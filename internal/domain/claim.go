package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProofDocument is a reference to an uploaded ownership proof.
// The file itself is stored by the upload collaborator.
type ProofDocument struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Kind       string    `json:"kind,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Challenge is one identity question put to a claimant.
type Challenge struct {
	ID          uuid.UUID     `json:"id"`
	Kind        ChallengeKind `json:"kind"`
	Question    string        `json:"question"`
	Answer      *string       `json:"answer,omitempty"`
	MatchScore  *float64      `json:"match_score,omitempty"`
	Passed      *bool         `json:"passed,omitempty"`
	ConductedAt time.Time     `json:"conducted_at"`
	ConductedBy *uuid.UUID    `json:"conducted_by,omitempty"`
	AnsweredAt  *time.Time    `json:"answered_at,omitempty"`
}

// IsAnswered reports whether an answer was already recorded.
func (c *Challenge) IsAnswered() bool {
	return c.Answer != nil
}

// Claim is an ownership claim filed against a found item.
// Either ClaimantID is set, or the claim is anonymous and identified by
// AnonymousEmail plus a token whose bcrypt hash is AnonymousTokenHash.
type Claim struct {
	ID                 uuid.UUID
	ItemID             uuid.UUID
	ClaimantID         *uuid.UUID
	AnonymousEmail     *string
	AnonymousTokenHash *string
	Description        string
	Status             ClaimStatus
	ProofDocuments     []ProofDocument
	FraudRiskScore     int
	FraudFlags         []string
	Challenges         []Challenge
	VerifiedBy         *uuid.UUID
	VerifiedAt         *time.Time
	VerificationNotes  *string
	RejectedBy         *uuid.UUID
	RejectedAt         *time.Time
	RejectionReason    *string
	DeletedAt          *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAnonymous reports whether the claim was filed without an account.
func (c *Claim) IsAnonymous() bool {
	return c.ClaimantID == nil
}

// IsOwnedBy reports whether userID filed this claim.
func (c *Claim) IsOwnedBy(userID uuid.UUID) bool {
	return c.ClaimantID != nil && *c.ClaimantID == userID
}

// SameClaimant reports whether other was filed by the same account or,
// for anonymous claims, the same e-mail address.
func (c *Claim) SameClaimant(other *Claim) bool {
	if c.ClaimantID != nil && other.ClaimantID != nil {
		return *c.ClaimantID == *other.ClaimantID
	}
	if c.AnonymousEmail != nil && other.AnonymousEmail != nil {
		return NormalizeText(*c.AnonymousEmail) == NormalizeText(*other.AnonymousEmail)
	}
	return false
}

// FindChallenge returns the challenge with the given ID, or nil.
func (c *Claim) FindChallenge(id uuid.UUID) *Challenge {
	for i := range c.Challenges {
		if c.Challenges[i].ID == id {
			return &c.Challenges[i]
		}
	}
	return nil
}

// FraudAssessment is the outcome of fraud risk scoring for a claim.
type FraudAssessment struct {
	Score int
	Flags []string
}

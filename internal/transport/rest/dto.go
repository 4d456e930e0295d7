package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
	"github.com/heartmarshall/lostfound-backend/internal/service/match"
)

type scoresResponse struct {
	Category float64 `json:"category"`
	Keyword  float64 `json:"keyword"`
	Date     float64 `json:"date"`
	Location float64 `json:"location"`
	Feature  float64 `json:"feature"`
	Color    float64 `json:"color"`
	Total    int     `json:"total"`
}

type matchResponse struct {
	ID              uuid.UUID      `json:"id"`
	ItemID          uuid.UUID      `json:"item_id"`
	LostReportID    uuid.UUID      `json:"lost_report_id"`
	ConfidenceScore int            `json:"confidence_score"`
	Scores          scoresResponse `json:"scores"`
	Status          string         `json:"status"`
	Notified        bool           `json:"notified"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func toMatchResponse(m domain.Match) matchResponse {
	return matchResponse{
		ID:              m.ID,
		ItemID:          m.ItemID,
		LostReportID:    m.LostReportID,
		ConfidenceScore: m.ConfidenceScore,
		Scores: scoresResponse{
			Category: m.Scores.CategoryScore,
			Keyword:  m.Scores.KeywordScore,
			Date:     m.Scores.DateScore,
			Location: m.Scores.LocationScore,
			Feature:  m.Scores.FeatureScore,
			Color:    m.Scores.ColorScore,
			Total:    m.Scores.TotalScore,
		},
		Status:    m.Status.String(),
		Notified:  m.Notified,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toMatchResponses(ms []domain.Match) []matchResponse {
	out := make([]matchResponse, len(ms))
	for i, m := range ms {
		out[i] = toMatchResponse(m)
	}
	return out
}

type rescanResponse struct {
	Scanned  int `json:"scanned"`
	Updated  int `json:"updated"`
	Promoted int `json:"promoted"`
	Deleted  int `json:"deleted"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func toRescanResponse(r match.RescanResult) rescanResponse {
	return rescanResponse(r)
}

type weightsPayload struct {
	Category float64 `json:"category"`
	Keyword  float64 `json:"keyword"`
	Date     float64 `json:"date"`
	Location float64 `json:"location"`
	Feature  float64 `json:"feature"`
	Color    float64 `json:"color"`
}

type settingsResponse struct {
	AutoMatchThreshold int            `json:"auto_match_threshold"`
	RejectThreshold    int            `json:"reject_threshold"`
	Weights            weightsPayload `json:"weights"`
	UpdatedAt          time.Time      `json:"updated_at"`
	UpdatedBy          *uuid.UUID     `json:"updated_by,omitempty"`
}

func toSettingsResponse(s domain.Settings) settingsResponse {
	return settingsResponse{
		AutoMatchThreshold: s.AutoMatchThreshold,
		RejectThreshold:    s.RejectThreshold,
		Weights:            weightsPayload(s.Weights),
		UpdatedAt:          s.UpdatedAt,
		UpdatedBy:          s.UpdatedBy,
	}
}

type claimResponse struct {
	ID                uuid.UUID              `json:"id"`
	ItemID            uuid.UUID              `json:"item_id"`
	ClaimantID        *uuid.UUID             `json:"claimant_id,omitempty"`
	AnonymousEmail    *string                `json:"anonymous_email,omitempty"`
	Description       string                 `json:"description"`
	Status            string                 `json:"status"`
	ProofDocuments    []domain.ProofDocument `json:"proof_documents"`
	Challenges        []challengeResponse    `json:"challenges"`
	FraudRiskScore    *int                   `json:"fraud_risk_score,omitempty"`
	FraudFlags        []string               `json:"fraud_flags,omitempty"`
	VerifiedBy        *uuid.UUID             `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time             `json:"verified_at,omitempty"`
	VerificationNotes *string                `json:"verification_notes,omitempty"`
	RejectedAt        *time.Time             `json:"rejected_at,omitempty"`
	RejectionReason   *string                `json:"rejection_reason,omitempty"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
	// AnonymousToken is returned once, on filing.
	AnonymousToken string `json:"anonymous_token,omitempty"`
}

// toClaimResponse renders a claim. Fraud signals are visible to staff only.
func toClaimResponse(c *domain.Claim, staff bool) claimResponse {
	resp := claimResponse{
		ID:                c.ID,
		ItemID:            c.ItemID,
		ClaimantID:        c.ClaimantID,
		AnonymousEmail:    c.AnonymousEmail,
		Description:       c.Description,
		Status:            c.Status.String(),
		ProofDocuments:    c.ProofDocuments,
		Challenges:        make([]challengeResponse, len(c.Challenges)),
		VerifiedBy:        c.VerifiedBy,
		VerifiedAt:        c.VerifiedAt,
		VerificationNotes: c.VerificationNotes,
		RejectedAt:        c.RejectedAt,
		RejectionReason:   c.RejectionReason,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
	if resp.ProofDocuments == nil {
		resp.ProofDocuments = []domain.ProofDocument{}
	}
	for i := range c.Challenges {
		resp.Challenges[i] = toChallengeResponse(&c.Challenges[i])
	}
	if staff {
		score := c.FraudRiskScore
		resp.FraudRiskScore = &score
		resp.FraudFlags = c.FraudFlags
	}
	return resp
}

type challengeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Kind        string     `json:"kind"`
	Question    string     `json:"question"`
	Answered    bool       `json:"answered"`
	Passed      *bool      `json:"passed,omitempty"`
	MatchScore  *float64   `json:"match_score,omitempty"`
	ConductedAt time.Time  `json:"conducted_at"`
	AnsweredAt  *time.Time `json:"answered_at,omitempty"`
}

// toChallengeResponse omits the recorded answer text.
func toChallengeResponse(ch *domain.Challenge) challengeResponse {
	return challengeResponse{
		ID:          ch.ID,
		Kind:        ch.Kind.String(),
		Question:    ch.Question,
		Answered:    ch.IsAnswered(),
		Passed:      ch.Passed,
		MatchScore:  ch.MatchScore,
		ConductedAt: ch.ConductedAt,
		AnsweredAt:  ch.AnsweredAt,
	}
}

package claim

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lostfound-backend/internal/domain"
)

const (
	maxDescriptionLength = 2000
	maxReasonLength      = 1000
	maxProofDocuments    = 20
	maxAnswerLength      = 500
)

// ProofInput is an uploaded document reference supplied by the caller.
type ProofInput struct {
	URL  string
	Kind string
}

// CreateClaimInput holds the parameters for filing a claim. Exactly one of
// ClaimantID and AnonymousEmail must be set.
type CreateClaimInput struct {
	ItemID         uuid.UUID
	ClaimantID     *uuid.UUID
	AnonymousEmail *string
	Description    string
	ProofDocuments []ProofInput
}

// Validate checks all fields and collects all errors.
func (i CreateClaimInput) Validate() error {
	var errs []domain.FieldError

	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "item_id", Message: "required"})
	}

	switch {
	case i.ClaimantID == nil && i.AnonymousEmail == nil:
		errs = append(errs, domain.FieldError{Field: "claimant", Message: "claimant or anonymous email required"})
	case i.ClaimantID != nil && i.AnonymousEmail != nil:
		errs = append(errs, domain.FieldError{Field: "claimant", Message: "claimant and anonymous email are mutually exclusive"})
	case i.AnonymousEmail != nil:
		if _, err := mail.ParseAddress(strings.TrimSpace(*i.AnonymousEmail)); err != nil {
			errs = append(errs, domain.FieldError{Field: "anonymous_email", Message: "invalid email"})
		}
	}

	if len([]rune(strings.TrimSpace(i.Description))) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	errs = append(errs, validateProofs(i.ProofDocuments, false)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateProofs(docs []ProofInput, required bool) []domain.FieldError {
	var errs []domain.FieldError
	if required && len(docs) == 0 {
		errs = append(errs, domain.FieldError{Field: "proof_documents", Message: "at least one document required"})
	}
	if len(docs) > maxProofDocuments {
		errs = append(errs, domain.FieldError{Field: "proof_documents", Message: "too many documents"})
	}
	for _, d := range docs {
		if strings.TrimSpace(d.URL) == "" {
			errs = append(errs, domain.FieldError{Field: "proof_documents.url", Message: "required"})
			break
		}
	}
	return errs
}

func toProofDocuments(docs []ProofInput, now time.Time) []domain.ProofDocument {
	out := make([]domain.ProofDocument, len(docs))
	for i, d := range docs {
		out[i] = domain.ProofDocument{
			ID:         uuid.New(),
			URL:        strings.TrimSpace(d.URL),
			Kind:       strings.TrimSpace(d.Kind),
			UploadedAt: now,
		}
	}
	return out
}

// normalizeEmail lowercases and trims an address for storage and comparison.
func normalizeEmail(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

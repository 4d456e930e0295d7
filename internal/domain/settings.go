package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Weights is the per-dimension weight vector used by the scoring engine.
type Weights struct {
	Category float64
	Keyword  float64
	Date     float64
	Location float64
	Feature  float64
	Color    float64
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Category + w.Keyword + w.Date + w.Location + w.Feature + w.Color
}

// DefaultWeights is the weight vector used when settings are first created.
var DefaultWeights = Weights{
	Category: 0.20,
	Keyword:  0.25,
	Date:     0.15,
	Location: 0.15,
	Feature:  0.15,
	Color:    0.10,
}

// weightSumTolerance absorbs float rounding in admin-supplied weights.
const weightSumTolerance = 0.001

// Settings is an immutable snapshot of the matching configuration.
// Callers receive values, never shared pointers; an update produces a new
// snapshot.
type Settings struct {
	AutoMatchThreshold int
	RejectThreshold    int
	Weights            Weights
	UpdatedAt          time.Time
	UpdatedBy          *uuid.UUID
}

// DefaultSettings returns settings seeded from the given thresholds.
func DefaultSettings(rejectThreshold, autoMatchThreshold int) Settings {
	return Settings{
		AutoMatchThreshold: autoMatchThreshold,
		RejectThreshold:    rejectThreshold,
		Weights:            DefaultWeights,
	}
}

// WeightsUpdate is a partial weight vector; nil fields keep their value.
type WeightsUpdate struct {
	Category *float64
	Keyword  *float64
	Date     *float64
	Location *float64
	Feature  *float64
	Color    *float64
}

// SettingsUpdate is a partial settings change; nil fields keep their value.
type SettingsUpdate struct {
	AutoMatchThreshold *int
	RejectThreshold    *int
	Weights            *WeightsUpdate
}

// IsEmpty reports whether the update changes nothing.
func (u SettingsUpdate) IsEmpty() bool {
	if u.AutoMatchThreshold != nil || u.RejectThreshold != nil {
		return false
	}
	if u.Weights == nil {
		return true
	}
	w := u.Weights
	return w.Category == nil && w.Keyword == nil && w.Date == nil &&
		w.Location == nil && w.Feature == nil && w.Color == nil
}

// Merge applies the update field by field and returns a new snapshot.
// The receiver is not modified.
func (s Settings) Merge(u SettingsUpdate) Settings {
	out := s
	if u.AutoMatchThreshold != nil {
		out.AutoMatchThreshold = *u.AutoMatchThreshold
	}
	if u.RejectThreshold != nil {
		out.RejectThreshold = *u.RejectThreshold
	}
	if u.Weights != nil {
		mergeWeight(&out.Weights.Category, u.Weights.Category)
		mergeWeight(&out.Weights.Keyword, u.Weights.Keyword)
		mergeWeight(&out.Weights.Date, u.Weights.Date)
		mergeWeight(&out.Weights.Location, u.Weights.Location)
		mergeWeight(&out.Weights.Feature, u.Weights.Feature)
		mergeWeight(&out.Weights.Color, u.Weights.Color)
	}
	return out
}

func mergeWeight(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks thresholds and the weight vector. Inconsistent weight
// vectors are rejected rather than normalized.
func (s Settings) Validate() error {
	var errs []FieldError

	if s.RejectThreshold < 0 || s.RejectThreshold > 100 {
		errs = append(errs, FieldError{Field: "reject_threshold", Message: "must be between 0 and 100"})
	}
	if s.AutoMatchThreshold < 0 || s.AutoMatchThreshold > 100 {
		errs = append(errs, FieldError{Field: "auto_match_threshold", Message: "must be between 0 and 100"})
	}
	if s.RejectThreshold >= s.AutoMatchThreshold {
		errs = append(errs, FieldError{Field: "reject_threshold", Message: "must be lower than auto_match_threshold"})
	}

	weights := []struct {
		field string
		value float64
	}{
		{"weights.category", s.Weights.Category},
		{"weights.keyword", s.Weights.Keyword},
		{"weights.date", s.Weights.Date},
		{"weights.location", s.Weights.Location},
		{"weights.feature", s.Weights.Feature},
		{"weights.color", s.Weights.Color},
	}
	for _, w := range weights {
		if w.value < 0 || w.value > 1 || math.IsNaN(w.value) {
			errs = append(errs, FieldError{Field: w.field, Message: "must be between 0 and 1"})
		}
	}
	if math.Abs(s.Weights.Sum()-1) > weightSumTolerance {
		errs = append(errs, FieldError{Field: "weights", Message: "must sum to 1"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

package entity

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type CommitmentState string

const (
	StateNotApplicable CommitmentState = "not_applicable"
	StateNotStarted    CommitmentState = "not_started"
	StateInProgress    CommitmentState = "in_progress"
	StatePartial       CommitmentState = "partial"
	StateComplete      CommitmentState = "complete"
)

type ActualKind string

const (
	ActualNumber       ActualKind = "number"
	ActualYes          ActualKind = "yes"
	ActualNo           ActualKind = "no"
	ActualNotScheduled ActualKind = "not_scheduled"
)

var ErrInvalidActual = errors.New("actual must be a number, \"yes\", \"no\" or \"not_scheduled\"")

// Actual is the achieved value of a commitment on a day. Numeric for
// duration targets, a yes/no marker for binary ones.
type Actual struct {
	Kind  ActualKind
	Value float64
}

func NumericActual(v float64) Actual {
	return Actual{Kind: ActualNumber, Value: v}
}

func (a Actual) MarshalJSON() ([]byte, error) {
	if a.Kind == ActualNumber || a.Kind == "" {
		return sonic.Marshal(a.Value)
	}
	return sonic.Marshal(string(a.Kind))
}

func (a *Actual) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err == nil {
		switch ActualKind(s) {
		case ActualYes, ActualNo, ActualNotScheduled:
			*a = Actual{Kind: ActualKind(s)}
			return nil
		}
		return ErrInvalidActual
	}
	var v float64
	if err := sonic.Unmarshal(data, &v); err != nil {
		return ErrInvalidActual
	}
	*a = NumericActual(v)
	return nil
}

type CommitmentDayStatus struct {
	Target        Target          `json:"target"`
	Actual        Actual          `json:"actual"`
	Unit          Unit            `json:"unit"`
	CompletionPct *float64        `json:"completion_pct"`
	Status        CommitmentState `json:"status"`
}

func (s *CommitmentDayStatus) Applicable() bool {
	return s.Status != StateNotApplicable
}

type DailyChallengeMetrics struct {
	ID                        uuid.UUID                      `json:"id"`
	ChallengeID               uuid.UUID                      `json:"challenge_id"`
	Date                      time.Time                      `json:"date"`
	DayNumber                 int                            `json:"day_number"`
	CommitmentStatus          map[string]CommitmentDayStatus `json:"commitment_status"`
	OverallCompletionPct      float64                        `json:"overall_completion_pct"`
	ConsistencyScore          int                            `json:"consistency_score"`
	DiligenceScore            int                            `json:"diligence_score"`
	CumulativeConsistencyRate float64                        `json:"cumulative_consistency_rate"`
	CumulativeDiligenceRate   float64                        `json:"cumulative_diligence_rate"`
	DayOfWeek                 string                         `json:"day_of_week"`
	StreakCount               int                            `json:"streak_count"`
	Mood                      *string                        `json:"mood,omitempty"`
	EnergyLevel               *int                           `json:"energy_level,omitempty"`
	Notes                     *string                        `json:"notes,omitempty"`
	CreatedAt                 time.Time                      `json:"created_at"`
	UpdatedAt                 time.Time                      `json:"updated_at"`
}

// Reflection holds the subjective part of a day, written by the user.
type Reflection struct {
	Mood        *string `json:"mood,omitempty"`
	EnergyLevel *int    `json:"energy_level,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

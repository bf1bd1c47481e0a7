package entity

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
	ChallengeAbandoned ChallengeStatus = "abandoned"
)

type Challenge struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"uid"`
	Name               string          `json:"name"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	DurationDays       int             `json:"duration_days"`
	Commitments        []Commitment    `json:"commitments"`
	IdentityStatement  string          `json:"identity_statement,omitempty"`
	WhyStatement       string          `json:"why_statement,omitempty"`
	ObstaclePrediction string          `json:"obstacle_prediction,omitempty"`
	SuccessThreshold   int             `json:"success_threshold"`
	Status             ChallengeStatus `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewChallenge fills the derived end date. The end date is inclusive.
func NewChallenge(uid uuid.UUID, name string, start time.Time, durationDays int, commitments []Commitment) *Challenge {
	start = DateOnly(start)
	return &Challenge{
		UserID:       uid,
		Name:         name,
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, durationDays-1),
		DurationDays: durationDays,
		Commitments:  commitments,
		Status:       ChallengeActive,
	}
}

// DayNumber is 1 on the start date.
func (c *Challenge) DayNumber(date time.Time) int {
	return DaysBetween(c.StartDate, date) + 1
}

func (c *Challenge) Covers(date time.Time) bool {
	n := c.DayNumber(date)
	return n >= 1 && n <= c.DurationDays
}

type Unit string

const (
	UnitHours   Unit = "hours"
	UnitMinutes Unit = "minutes"
)

type FrequencyType string

const (
	FrequencyDaily  FrequencyType = "daily"
	FrequencyWeekly FrequencyType = "weekly"
)

type Frequency struct {
	Type FrequencyType `json:"type"`
	// Weekday indexes, 0 is Sunday
	Days []int `json:"days,omitempty"`
}

func (f Frequency) AppliesOn(wd time.Weekday) bool {
	if f.Type == FrequencyDaily {
		return true
	}
	return slices.Contains(f.Days, int(wd))
}

type Commitment struct {
	ID        string    `json:"id"`
	Habit     string    `json:"habit"`
	Category  string    `json:"category"`
	Target    Target    `json:"target"`
	Unit      Unit      `json:"unit"`
	Frequency Frequency `json:"frequency"`
}

// TargetHours converts a numeric target to hours.
func (c *Commitment) TargetHours() float64 {
	if c.Unit == UnitMinutes {
		return c.Target.Value / 60
	}
	return c.Target.Value
}

// MatchesCategory compares against both the category name and its id.
func (c *Commitment) MatchesCategory(a *Activity) bool {
	if c.Category == "" {
		return false
	}
	if strings.EqualFold(c.Category, a.CategoryName) {
		return true
	}
	return c.Category == a.CategoryID.String()
}

const targetComplete = "complete"

var ErrInvalidTarget = errors.New("target must be a number or \"complete\"")

// Target is either a numeric amount in the commitment's unit or the binary
// "complete" sentinel.
type Target struct {
	Complete bool
	Value    float64
}

func NumericTarget(v float64) Target {
	return Target{Value: v}
}

func CompleteTarget() Target {
	return Target{Complete: true}
}

func (t Target) MarshalJSON() ([]byte, error) {
	if t.Complete {
		return sonic.Marshal(targetComplete)
	}
	return sonic.Marshal(t.Value)
}

func (t *Target) UnmarshalJSON(data []byte) error {
	var s string
	if err := sonic.Unmarshal(data, &s); err == nil {
		if s != targetComplete {
			return ErrInvalidTarget
		}
		*t = CompleteTarget()
		return nil
	}
	var v float64
	if err := sonic.Unmarshal(data, &v); err != nil {
		return ErrInvalidTarget
	}
	*t = NumericTarget(v)
	return nil
}

package entity

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type PatternType string

const (
	PatternWeakDay        PatternType = "weak_day"
	PatternStrongTime     PatternType = "strong_time"
	PatternRecoverySpeed  PatternType = "recovery_speed"
	PatternFailureTrigger PatternType = "failure_trigger"
)

// PatternPayload is implemented by the four pattern data shapes. The type
// doubles as the storage discriminant.
type PatternPayload interface {
	PatternType() PatternType
}

type WeakDayPattern struct {
	Day           string  `json:"day"`
	AvgCompletion float64 `json:"avg_completion"`
	SampleSize    int     `json:"sample_size"`
}

func (WeakDayPattern) PatternType() PatternType { return PatternWeakDay }

type StrongTimePattern struct {
	TimeWindow         string  `json:"time_window"`
	StartHour          int     `json:"start_hour"`
	EndHour            int     `json:"end_hour"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`
	SessionCount       int     `json:"session_count"`
}

func (StrongTimePattern) PatternType() PatternType { return PatternStrongTime }

type RecoverySpeedPattern struct {
	AvgDaysToRecover float64 `json:"avg_days_to_recover"`
	MinDays          int     `json:"min_days"`
	MaxDays          int     `json:"max_days"`
	RecoveryCount    int     `json:"recovery_count"`
}

func (RecoverySpeedPattern) PatternType() PatternType { return PatternRecoverySpeed }

type FailureTriggerPattern struct {
	Day          string `json:"day"`
	Occurrences  int    `json:"occurrences"`
	TotalLowDays int    `json:"total_low_days"`
}

func (FailureTriggerPattern) PatternType() PatternType { return PatternFailureTrigger }

type BehaviorPattern struct {
	ID          uuid.UUID      `json:"id"`
	ChallengeID uuid.UUID      `json:"challenge_id"`
	Type        PatternType    `json:"pattern_type"`
	Data        PatternPayload `json:"pattern_data"`
	Confidence  int            `json:"confidence_score"`
	LastUpdated time.Time      `json:"last_updated"`
}

func NewBehaviorPattern(challengeID uuid.UUID, data PatternPayload, confidence int) *BehaviorPattern {
	return &BehaviorPattern{
		ChallengeID: challengeID,
		Type:        data.PatternType(),
		Data:        data,
		Confidence:  confidence,
	}
}

// DecodePatternPayload restores the typed payload stored for a pattern row.
func DecodePatternPayload(t PatternType, raw []byte) (PatternPayload, error) {
	var (
		payload PatternPayload
		err     error
	)
	switch t {
	case PatternWeakDay:
		var p WeakDayPattern
		err = sonic.Unmarshal(raw, &p)
		payload = p
	case PatternStrongTime:
		var p StrongTimePattern
		err = sonic.Unmarshal(raw, &p)
		payload = p
	case PatternRecoverySpeed:
		var p RecoverySpeedPattern
		err = sonic.Unmarshal(raw, &p)
		payload = p
	case PatternFailureTrigger:
		var p FailureTriggerPattern
		err = sonic.Unmarshal(raw, &p)
		payload = p
	default:
		return nil, fmt.Errorf("unknown pattern type %q", t)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s payload: %w", t, err)
	}
	return payload, nil
}

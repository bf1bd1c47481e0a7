package service

import (
	"math"
	"time"

	"github.com/limbo/progressly/pkg/entity"
)

const (
	minutesPerHour = 60
	fullCompletion = 100
	partialFrom    = 50
)

// EvaluateCommitment computes how far a commitment got on date. activities
// must already be narrowed to that date.
func EvaluateCommitment(c entity.Commitment, date time.Time, activities []entity.Activity) entity.CommitmentDayStatus {
	status, _ := evaluateCommitment(c, date, activities)
	return status
}

// evaluateCommitment also reports how many activities matched the
// commitment's category.
func evaluateCommitment(c entity.Commitment, date time.Time, activities []entity.Activity) (entity.CommitmentDayStatus, int) {
	result := entity.CommitmentDayStatus{
		Target: c.Target,
		Unit:   c.Unit,
	}
	if !c.Frequency.AppliesOn(date.Weekday()) {
		result.Actual = entity.Actual{Kind: entity.ActualNotScheduled}
		result.Status = entity.StateNotApplicable
		return result, 0
	}

	// A commitment without a category matches nothing and ends at 0%.
	matched, minutes := 0, 0
	for i := range activities {
		if c.MatchesCategory(&activities[i]) {
			matched++
			minutes += activities[i].DurationMinutes()
		}
	}

	if c.Target.Complete {
		pct := 0.0
		result.Actual = entity.Actual{Kind: entity.ActualNo}
		result.Status = entity.StateNotStarted
		if matched > 0 {
			pct = fullCompletion
			result.Actual = entity.Actual{Kind: entity.ActualYes}
			result.Status = entity.StateComplete
		}
		result.CompletionPct = &pct
		return result, matched
	}

	hours := float64(minutes) / minutesPerHour
	raw := 0.0
	// Non-positive targets can't be progressed against and stay at 0%.
	if target := c.TargetHours(); target > 0 {
		raw = math.Min(float64(minutes)*100/(target*minutesPerHour), fullCompletion)
	}
	actual := hours
	if c.Unit == entity.UnitMinutes {
		actual = float64(minutes)
	}
	pct := round2(raw)
	result.Actual = entity.NumericActual(round2(actual))
	result.CompletionPct = &pct
	result.Status = stateForPct(raw)
	return result, matched
}

// stateForPct maps the unrounded percentage to a state, so a nearly met
// target stays partial. 0 is not_started.
func stateForPct(pct float64) entity.CommitmentState {
	switch {
	case pct <= 0:
		return entity.StateNotStarted
	case pct < partialFrom:
		return entity.StateInProgress
	case pct < fullCompletion:
		return entity.StatePartial
	default:
		return entity.StateComplete
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

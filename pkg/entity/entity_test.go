package entity_test

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/progressly/pkg/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"14:05:30", 845, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := entity.ParseClock(tc.in)
			if tc.wantErr {
				var clockErr *entity.ClockError
				assert.ErrorAs(t, err, &clockErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestActivityDuration(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "09:00", "10:30", 90},
		{"past midnight", "23:00", "01:00", 120},
		{"zero length", "08:00", "08:00", 0},
		{"malformed", "8am", "10:00", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := entity.Activity{StartTime: tc.start, EndTime: tc.end}
			assert.Equal(t, tc.want, a.DurationMinutes())
		})
	}
}

func TestActivityStartHour(t *testing.T) {
	assert.Equal(t, 18, (&entity.Activity{StartTime: "18:45"}).StartHour())
	assert.Equal(t, -1, (&entity.Activity{StartTime: "late"}).StartHour())
}

func TestEffectiveDateFor(t *testing.T) {
	logged := time.Date(2024, 1, 6, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, date(2024, 1, 5), entity.EffectiveDateFor(logged, "01:30", 4))
	assert.Equal(t, date(2024, 1, 6), entity.EffectiveDateFor(logged, "04:00", 4))
	assert.Equal(t, date(2024, 1, 6), entity.EffectiveDateFor(logged, "01:30", 0))
	assert.Equal(t, date(2024, 1, 6), entity.EffectiveDateFor(logged, "bad", 4))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 1, entity.DaysBetween(date(2024, 2, 28), date(2024, 2, 29)))
	assert.Equal(t, 2, entity.DaysBetween(date(2024, 2, 28), date(2024, 3, 1)))
	assert.Equal(t, 0, entity.DaysBetween(date(2024, 1, 1), time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)))
	assert.True(t, entity.SameDate(date(2024, 1, 1), time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestNewChallenge(t *testing.T) {
	uid := uuid.New()
	c := entity.NewChallenge(uid, "thirty", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), 30, nil)
	assert.Equal(t, date(2024, 1, 1), c.StartDate)
	assert.Equal(t, date(2024, 1, 30), c.EndDate)
	assert.Equal(t, entity.ChallengeActive, c.Status)
	assert.Equal(t, 1, c.DayNumber(date(2024, 1, 1)))
	assert.Equal(t, 5, c.DayNumber(date(2024, 1, 5)))
	assert.True(t, c.Covers(date(2024, 1, 30)))
	assert.False(t, c.Covers(date(2024, 1, 31)))
	assert.False(t, c.Covers(date(2023, 12, 31)))
}

func TestFrequencyAppliesOn(t *testing.T) {
	daily := entity.Frequency{Type: entity.FrequencyDaily}
	weekly := entity.Frequency{Type: entity.FrequencyWeekly, Days: []int{1, 3, 5}}
	assert.True(t, daily.AppliesOn(time.Sunday))
	assert.True(t, weekly.AppliesOn(time.Wednesday))
	assert.False(t, weekly.AppliesOn(time.Tuesday))
}

func TestCommitmentMatchesCategory(t *testing.T) {
	catID := uuid.New()
	a := entity.Activity{CategoryID: catID, CategoryName: "Deep Work"}
	assert.True(t, (&entity.Commitment{Category: "deep work"}).MatchesCategory(&a))
	assert.True(t, (&entity.Commitment{Category: catID.String()}).MatchesCategory(&a))
	assert.False(t, (&entity.Commitment{Category: "Reading"}).MatchesCategory(&a))
	assert.False(t, (&entity.Commitment{}).MatchesCategory(&a))
}

func TestTargetJSON(t *testing.T) {
	raw, err := sonic.Marshal(entity.CompleteTarget())
	require.NoError(t, err)
	assert.Equal(t, `"complete"`, string(raw))

	raw, err = sonic.Marshal(entity.NumericTarget(1.5))
	require.NoError(t, err)
	assert.Equal(t, `1.5`, string(raw))

	var got entity.Target
	require.NoError(t, sonic.Unmarshal([]byte(`"complete"`), &got))
	assert.True(t, got.Complete)
	require.NoError(t, sonic.Unmarshal([]byte(`2`), &got))
	assert.Equal(t, entity.NumericTarget(2), got)
	assert.Error(t, sonic.Unmarshal([]byte(`"sometimes"`), &got))
}

func TestActualJSON(t *testing.T) {
	cases := []struct {
		actual entity.Actual
		want   string
	}{
		{entity.NumericActual(1.25), `1.25`},
		{entity.Actual{Kind: entity.ActualYes}, `"yes"`},
		{entity.Actual{Kind: entity.ActualNo}, `"no"`},
		{entity.Actual{Kind: entity.ActualNotScheduled}, `"not_scheduled"`},
	}
	for _, tc := range cases {
		raw, err := sonic.Marshal(tc.actual)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(raw))
		var back entity.Actual
		require.NoError(t, sonic.Unmarshal(raw, &back))
		assert.Equal(t, tc.actual, back)
	}
}

func TestDecodePatternPayload(t *testing.T) {
	raw := []byte(`{"day":"Monday","avg_completion":50,"sample_size":3}`)
	p, err := entity.DecodePatternPayload(entity.PatternWeakDay, raw)
	require.NoError(t, err)
	assert.Equal(t, entity.WeakDayPattern{Day: "Monday", AvgCompletion: 50, SampleSize: 3}, p)

	_, err = entity.DecodePatternPayload(entity.PatternType("mood_swing"), raw)
	assert.Error(t, err)
}

func TestNewBehaviorPattern(t *testing.T) {
	id := uuid.New()
	p := entity.NewBehaviorPattern(id, entity.RecoverySpeedPattern{AvgDaysToRecover: 2, MinDays: 1, MaxDays: 3, RecoveryCount: 2}, 30)
	assert.Equal(t, id, p.ChallengeID)
	assert.Equal(t, entity.PatternRecoverySpeed, p.Type)
	assert.Equal(t, 30, p.Confidence)
}

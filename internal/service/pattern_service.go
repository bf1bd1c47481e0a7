package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

const (
	weakDayMinSamples      = 3
	weakDayThreshold       = 70
	strongTimeMinSessions  = 5
	strongTimeWindowHours  = 3
	strongTimeFirstHour    = 6
	strongTimeWindowCount  = 6
	missThreshold          = 50
	failureTriggerMinCount = 3
)

// Substrings of category names that count as focused work.
var focusCategories = []string{"study", "work", "deep work", "coding", "writing"}

var weekdayOrder = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

type PatternService struct {
	challengesRepo repository.ChallengesRepositoryI
	activitiesRepo repository.ActivitiesRepositoryI
	metricsRepo    repository.DailyMetricsRepositoryI
	patternsRepo   repository.PatternsRepositoryI
	log            *logger.Logger
	now            func() time.Time
}

func NewPatternService(
	challengesRepo repository.ChallengesRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	metricsRepo repository.DailyMetricsRepositoryI,
	patternsRepo repository.PatternsRepositoryI,
	lg *logger.Logger,
) *PatternService {
	if challengesRepo == nil || activitiesRepo == nil || metricsRepo == nil || patternsRepo == nil {
		log.Fatal("on pattern service provided nil repos")
	}
	if lg == nil {
		lg = logger.Nop()
	}
	return &PatternService{
		challengesRepo: challengesRepo,
		activitiesRepo: activitiesRepo,
		metricsRepo:    metricsRepo,
		patternsRepo:   patternsRepo,
		log:            lg.With("service", "PatternService"),
		now:            time.Now,
	}
}

// DetectPatterns reruns all detectors over the challenge history. Patterns
// that were written are returned even when some detector failed; the
// failures come back joined.
func (ps *PatternService) DetectPatterns(ctx context.Context, userID, challengeID uuid.UUID) ([]entity.BehaviorPattern, error) {
	challenge, err := ownedChallenge(ctx, ps.challengesRepo, userID, challengeID)
	if err != nil {
		return nil, err
	}
	history, err := ps.metricsRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("metrics repository error: %w", err)
	}
	to := challenge.EndDate
	if today := entity.DateOnly(ps.now()); today.Before(to) {
		to = today
	}
	activities, err := ps.activitiesRepo.GetByUserAndDateRange(ctx, userID, challenge.StartDate, to)
	if err != nil {
		return nil, fmt.Errorf("activities repository error: %w", err)
	}
	return ps.RunDetectors(ctx, challengeID, history, activities)
}

type detector struct {
	name   entity.PatternType
	detect func() (entity.PatternPayload, int, bool)
}

// RunDetectors runs every detector as its own unit of work. Units share no
// state and write disjoint rows, one unit failing leaves the others alone.
func (ps *PatternService) RunDetectors(ctx context.Context, challengeID uuid.UUID, history []entity.DailyChallengeMetrics, activities []entity.Activity) ([]entity.BehaviorPattern, error) {
	detectors := []detector{
		{entity.PatternWeakDay, func() (entity.PatternPayload, int, bool) { return DetectWeakDay(history) }},
		{entity.PatternStrongTime, func() (entity.PatternPayload, int, bool) { return DetectStrongTime(activities) }},
		{entity.PatternRecoverySpeed, func() (entity.PatternPayload, int, bool) { return DetectRecoverySpeed(history) }},
		{entity.PatternFailureTrigger, func() (entity.PatternPayload, int, bool) { return DetectFailureTrigger(history) }},
	}
	written := make([]*entity.BehaviorPattern, len(detectors))
	errs := make([]error, len(detectors))

	var g errgroup.Group
	for i, d := range detectors {
		i, d := i, d
		g.Go(func() error {
			payload, confidence, ok := d.detect()
			if !ok {
				// Not enough samples: no row, no signal.
				ps.log.Debug("pattern skipped", "challenge_id", challengeID.String(), "pattern", string(d.name))
				return nil
			}
			p := entity.NewBehaviorPattern(challengeID, payload, confidence)
			if err := ps.patternsRepo.Upsert(ctx, p); err != nil {
				errs[i] = fmt.Errorf("%s: patterns repository error: %w", d.name, err)
				ps.log.Error("pattern upsert failed", "challenge_id", challengeID.String(), "pattern", string(d.name), "error", err)
				return nil
			}
			written[i] = p
			return nil
		})
	}
	_ = g.Wait()

	result := make([]entity.BehaviorPattern, 0, len(detectors))
	for _, p := range written {
		if p != nil {
			result = append(result, *p)
		}
	}
	return result, errors.Join(errs...)
}

func (ps *PatternService) ListPatterns(ctx context.Context, userID, challengeID uuid.UUID) ([]entity.BehaviorPattern, error) {
	if _, err := ownedChallenge(ctx, ps.challengesRepo, userID, challengeID); err != nil {
		return nil, err
	}
	patterns, err := ps.patternsRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("patterns repository error: %w", err)
	}
	return patterns, nil
}

// DetectWeakDay finds the weekday with the lowest average completion among
// weekdays seen at least three times. Reported only below 70%.
func DetectWeakDay(history []entity.DailyChallengeMetrics) (entity.PatternPayload, int, bool) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, m := range history {
		sums[m.DayOfWeek] += m.OverallCompletionPct
		counts[m.DayOfWeek]++
	}
	var (
		best  entity.WeakDayPattern
		found bool
	)
	for _, wd := range weekdayOrder {
		day := wd.String()
		n := counts[day]
		if n < weakDayMinSamples {
			continue
		}
		avg := sums[day] / float64(n)
		if !found || avg < best.AvgCompletion {
			best = entity.WeakDayPattern{Day: day, AvgCompletion: avg, SampleSize: n}
			found = true
		}
	}
	if !found || best.AvgCompletion >= weakDayThreshold {
		return nil, 0, false
	}
	best.AvgCompletion = round2(best.AvgCompletion)
	return best, min(best.SampleSize*10, 100), true
}

// DetectStrongTime finds the 3-hour window where focus sessions add up to
// the most time. Windows cover 06:00 to midnight.
func DetectStrongTime(activities []entity.Activity) (entity.PatternPayload, int, bool) {
	var (
		minutes [strongTimeWindowCount]int
		counts  [strongTimeWindowCount]int
	)
	for i := range activities {
		a := &activities[i]
		if !isFocusCategory(a.CategoryName) {
			continue
		}
		h := a.StartHour()
		if h < strongTimeFirstHour {
			continue
		}
		w := (h - strongTimeFirstHour) / strongTimeWindowHours
		minutes[w] += a.DurationMinutes()
		counts[w]++
	}
	var (
		best      entity.StrongTimePattern
		bestScore float64
		found     bool
	)
	for w := 0; w < strongTimeWindowCount; w++ {
		if counts[w] < strongTimeMinSessions {
			continue
		}
		avg := float64(minutes[w]) / float64(counts[w])
		score := avg * float64(counts[w])
		if !found || score > bestScore {
			start := strongTimeFirstHour + w*strongTimeWindowHours
			best = entity.StrongTimePattern{
				TimeWindow:         fmt.Sprintf("%02d:00-%02d:00", start, start+strongTimeWindowHours),
				StartHour:          start,
				EndHour:            start + strongTimeWindowHours,
				AvgDurationMinutes: round2(avg),
				SessionCount:       counts[w],
			}
			bestScore = score
			found = true
		}
	}
	if !found {
		return nil, 0, false
	}
	return best, min(best.SessionCount*8, 100), true
}

func isFocusCategory(name string) bool {
	name = strings.ToLower(name)
	for _, c := range focusCategories {
		if strings.Contains(name, c) {
			return true
		}
	}
	return false
}

// DetectRecoverySpeed measures how many days in a row stay below 50% before
// the user is back. A run still open at the end of history isn't counted.
func DetectRecoverySpeed(history []entity.DailyChallengeMetrics) (entity.PatternPayload, int, bool) {
	days := sortedByDate(history)
	var (
		streaks []int
		run     int
	)
	for _, m := range days {
		if m.OverallCompletionPct < missThreshold {
			run++
			continue
		}
		if run > 0 {
			streaks = append(streaks, run)
			run = 0
		}
	}
	if len(streaks) == 0 {
		return nil, 0, false
	}
	total := 0
	for _, s := range streaks {
		total += s
	}
	p := entity.RecoverySpeedPattern{
		AvgDaysToRecover: round2(float64(total) / float64(len(streaks))),
		MinDays:          slices.Min(streaks),
		MaxDays:          slices.Max(streaks),
		RecoveryCount:    len(streaks),
	}
	return p, min(p.RecoveryCount*15, 100), true
}

// DetectFailureTrigger finds the weekday most low days fall on.
func DetectFailureTrigger(history []entity.DailyChallengeMetrics) (entity.PatternPayload, int, bool) {
	tally := make(map[string]int)
	lowDays := 0
	for _, m := range history {
		if m.OverallCompletionPct < missThreshold {
			tally[m.DayOfWeek]++
			lowDays++
		}
	}
	if lowDays < failureTriggerMinCount {
		return nil, 0, false
	}
	var best entity.FailureTriggerPattern
	for _, wd := range weekdayOrder {
		day := wd.String()
		if tally[day] > best.Occurrences {
			best = entity.FailureTriggerPattern{Day: day, Occurrences: tally[day]}
		}
	}
	if best.Occurrences < failureTriggerMinCount {
		return nil, 0, false
	}
	best.TotalLowDays = lowDays
	confidence := int(math.Min(math.Round(float64(best.Occurrences)/float64(lowDays)*100), 100))
	return best, confidence, true
}

func sortedByDate(history []entity.DailyChallengeMetrics) []entity.DailyChallengeMetrics {
	days := slices.Clone(history)
	slices.SortStableFunc(days, func(a, b entity.DailyChallengeMetrics) int {
		return a.Date.Compare(b.Date)
	})
	return days
}

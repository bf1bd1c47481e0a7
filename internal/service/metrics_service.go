package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

const (
	streakThreshold = 70
	activeDayScore  = 100
)

type MetricsService struct {
	challengesRepo repository.ChallengesRepositoryI
	activitiesRepo repository.ActivitiesRepositoryI
	metricsRepo    repository.DailyMetricsRepositoryI
	log            *logger.Logger
}

func NewMetricsService(
	challengesRepo repository.ChallengesRepositoryI,
	activitiesRepo repository.ActivitiesRepositoryI,
	metricsRepo repository.DailyMetricsRepositoryI,
	lg *logger.Logger,
) *MetricsService {
	if challengesRepo == nil || activitiesRepo == nil || metricsRepo == nil {
		log.Fatal("on metrics service provided nil repos")
	}
	if lg == nil {
		lg = logger.Nop()
	}
	return &MetricsService{
		challengesRepo: challengesRepo,
		activitiesRepo: activitiesRepo,
		metricsRepo:    metricsRepo,
		log:            lg.With("service", "MetricsService"),
	}
}

// CalculateDailyMetrics folds the day's activities and the stored history
// into one metrics row and upserts it. Repository errors are returned as is,
// there is no retry here.
func (ms *MetricsService) CalculateDailyMetrics(ctx context.Context, challengeID uuid.UUID, date time.Time, challenge *entity.Challenge, activities []entity.Activity) (*entity.DailyChallengeMetrics, error) {
	day := entity.DateOnly(date)
	history, err := ms.metricsRepo.GetBefore(ctx, challengeID, day)
	if err != nil {
		return nil, fmt.Errorf("metrics repository error: %w", err)
	}
	metrics := ComputeDailyMetrics(challenge, day, activities, history)
	metrics.ChallengeID = challengeID
	if err = ms.metricsRepo.Upsert(ctx, metrics); err != nil {
		return nil, fmt.Errorf("metrics repository error: %w", err)
	}
	ms.log.Debug("daily metrics saved",
		"challenge_id", challengeID.String(),
		"date", day.Format(entity.DateLayout),
		"overall", metrics.OverallCompletionPct,
		"streak", metrics.StreakCount,
	)
	return metrics, nil
}

// ComputeDailyMetrics is the pure part of CalculateDailyMetrics. history
// holds previously stored days; rows on or after date are ignored.
func ComputeDailyMetrics(challenge *entity.Challenge, date time.Time, activities []entity.Activity, history []entity.DailyChallengeMetrics) *entity.DailyChallengeMetrics {
	day := entity.DateOnly(date)

	dayActivities := make([]entity.Activity, 0, len(activities))
	for _, a := range activities {
		if entity.SameDate(a.EffectiveDate, day) {
			dayActivities = append(dayActivities, a)
		}
	}

	statuses := make(map[string]entity.CommitmentDayStatus, len(challenge.Commitments))
	hasAnyActivity := false
	applicable, pctSum := 0, 0.0
	for _, c := range challenge.Commitments {
		status, matched := evaluateCommitment(c, day, dayActivities)
		statuses[c.ID] = status
		if matched > 0 {
			hasAnyActivity = true
		}
		// not_applicable days stay out of the average
		if status.Applicable() && status.CompletionPct != nil {
			applicable++
			pctSum += *status.CompletionPct
		}
	}

	overall := 0.0
	if applicable > 0 {
		overall = round2(pctSum / float64(applicable))
	}
	consistency := 0
	if hasAnyActivity {
		consistency = activeDayScore
	}
	// Diligence duplicates the overall percentage, kept as its own column.
	diligence := int(math.Round(overall))

	prior := priorDays(history, day)
	totalDays := len(prior) + 1
	consistentDays, diligenceSum := 0, diligence
	if hasAnyActivity {
		consistentDays++
	}
	for _, p := range prior {
		if p.ConsistencyScore > 0 {
			consistentDays++
		}
		diligenceSum += p.DiligenceScore
	}

	return &entity.DailyChallengeMetrics{
		ChallengeID:               challenge.ID,
		Date:                      day,
		DayNumber:                 challenge.DayNumber(day),
		CommitmentStatus:          statuses,
		OverallCompletionPct:      overall,
		ConsistencyScore:          consistency,
		DiligenceScore:            diligence,
		CumulativeConsistencyRate: round2(float64(consistentDays) / float64(totalDays) * 100),
		CumulativeDiligenceRate:   round2(float64(diligenceSum) / float64(totalDays)),
		DayOfWeek:                 day.Weekday().String(),
		StreakCount:               streak(day, overall, hasAnyActivity, prior),
	}
}

// priorDays returns history rows strictly before day, oldest first.
func priorDays(history []entity.DailyChallengeMetrics, day time.Time) []entity.DailyChallengeMetrics {
	prior := make([]entity.DailyChallengeMetrics, 0, len(history))
	for _, h := range history {
		if entity.DateOnly(h.Date).Before(day) {
			prior = append(prior, h)
		}
	}
	slices.SortFunc(prior, func(a, b entity.DailyChallengeMetrics) int {
		return a.Date.Compare(b.Date)
	})
	return prior
}

// streak counts today plus every directly preceding day at or above the
// threshold. A missing calendar day breaks the chain.
func streak(day time.Time, overall float64, hasAnyActivity bool, prior []entity.DailyChallengeMetrics) int {
	if overall < streakThreshold || !hasAnyActivity {
		return 0
	}
	count := 1
	next := day
	for i := len(prior) - 1; i >= 0; i-- {
		p := prior[i]
		if entity.DaysBetween(p.Date, next) != 1 || p.OverallCompletionPct < streakThreshold {
			break
		}
		count++
		next = p.Date
	}
	return count
}

func (ms *MetricsService) RecalculateDay(ctx context.Context, userID, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error) {
	challenge, err := ownedChallenge(ctx, ms.challengesRepo, userID, challengeID)
	if err != nil {
		return nil, err
	}
	day := entity.DateOnly(date)
	if !challenge.Covers(day) {
		return nil, errorvalues.ErrDateOutsideChallenge
	}
	activities, err := ms.activitiesRepo.GetByUserAndDateRange(ctx, userID, day, day)
	if err != nil {
		return nil, fmt.Errorf("activities repository error: %w", err)
	}
	return ms.CalculateDailyMetrics(ctx, challengeID, day, challenge, activities)
}

func (ms *MetricsService) ListMetrics(ctx context.Context, userID, challengeID uuid.UUID) ([]entity.DailyChallengeMetrics, error) {
	if _, err := ownedChallenge(ctx, ms.challengesRepo, userID, challengeID); err != nil {
		return nil, err
	}
	metrics, err := ms.metricsRepo.GetByChallengeID(ctx, challengeID)
	if err != nil {
		return nil, fmt.Errorf("metrics repository error: %w", err)
	}
	return metrics, nil
}

// GetDayMetrics returns the stored row of one day without recomputing it.
func (ms *MetricsService) GetDayMetrics(ctx context.Context, userID, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error) {
	if _, err := ownedChallenge(ctx, ms.challengesRepo, userID, challengeID); err != nil {
		return nil, err
	}
	m, err := ms.metricsRepo.GetByDate(ctx, challengeID, entity.DateOnly(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricsNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("metrics repository error: %w", err)
	}
	return m, nil
}

func (ms *MetricsService) UpdateReflection(ctx context.Context, userID, challengeID uuid.UUID, date time.Time, r entity.Reflection) error {
	if r.EnergyLevel != nil && (*r.EnergyLevel < 1 || *r.EnergyLevel > 5) {
		return errorvalues.ErrInvalidReflection
	}
	if _, err := ownedChallenge(ctx, ms.challengesRepo, userID, challengeID); err != nil {
		return err
	}
	err := ms.metricsRepo.UpdateReflection(ctx, challengeID, entity.DateOnly(date), r)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMetricsNotFound) {
			return err
		}
		return fmt.Errorf("metrics repository error: %w", err)
	}
	return nil
}

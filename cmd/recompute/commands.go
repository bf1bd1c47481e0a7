package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/internal/service"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

type appContext struct {
	ctx        context.Context
	challenges repository.ChallengesRepositoryI
	activities repository.ActivitiesRepositoryI
	metrics    *service.MetricsService
	patterns   *service.PatternService
	log        *logger.Logger
}

type MetricsCmd struct {
	Challenge string `help:"Challenge id." required:""`
	From      string `help:"First day to recompute (YYYY-MM-DD). Defaults to challenge start."`
	To        string `help:"Last day to recompute (YYYY-MM-DD). Defaults to today or challenge end."`
}

// Run walks the range day by day. Each day reads the already stored earlier
// days, so the order matters for streaks and cumulative rates.
func (c *MetricsCmd) Run(app *appContext) error {
	id, err := uuid.Parse(c.Challenge)
	if err != nil {
		return fmt.Errorf("invalid challenge id: %w", err)
	}
	challenge, err := app.challenges.GetByID(app.ctx, id)
	if err != nil {
		return err
	}
	from, to, err := recomputeRange(challenge, c.From, c.To, time.Now())
	if err != nil {
		return err
	}
	if to.Before(from) {
		return fmt.Errorf("nothing to recompute: %s is after %s", from.Format(entity.DateLayout), to.Format(entity.DateLayout))
	}
	activities, err := app.activities.GetByUserAndDateRange(app.ctx, challenge.UserID, from, to)
	if err != nil {
		return err
	}
	byDay := groupByEffectiveDate(activities)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		m, err := app.metrics.CalculateDailyMetrics(app.ctx, id, day, challenge, byDay[day.Format(entity.DateLayout)])
		if err != nil {
			return fmt.Errorf("%s: %w", day.Format(entity.DateLayout), err)
		}
		app.log.Info("day recomputed",
			"date", day.Format(entity.DateLayout),
			"overall", m.OverallCompletionPct,
			"streak", m.StreakCount,
		)
	}
	return nil
}

type PatternsCmd struct {
	Challenge string `help:"Challenge id." required:""`
}

func (c *PatternsCmd) Run(app *appContext) error {
	id, err := uuid.Parse(c.Challenge)
	if err != nil {
		return fmt.Errorf("invalid challenge id: %w", err)
	}
	challenge, err := app.challenges.GetByID(app.ctx, id)
	if err != nil {
		return err
	}
	patterns, err := app.patterns.DetectPatterns(app.ctx, challenge.UserID, id)
	for _, p := range patterns {
		app.log.Info("pattern stored", "type", string(p.Type), "confidence", p.Confidence)
	}
	return err
}

// recomputeRange clamps the requested range to the challenge window and to
// now.
func recomputeRange(challenge *entity.Challenge, fromArg, toArg string, now time.Time) (time.Time, time.Time, error) {
	from := challenge.StartDate
	to := challenge.EndDate
	if today := entity.DateOnly(now); today.Before(to) {
		to = today
	}
	if fromArg != "" {
		d, err := time.ParseInLocation(entity.DateLayout, fromArg, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from: %w", err)
		}
		if d.After(from) {
			from = d
		}
	}
	if toArg != "" {
		d, err := time.ParseInLocation(entity.DateLayout, toArg, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to: %w", err)
		}
		if d.Before(to) {
			to = d
		}
	}
	return entity.DateOnly(from), entity.DateOnly(to), nil
}

func groupByEffectiveDate(activities []entity.Activity) map[string][]entity.Activity {
	out := make(map[string][]entity.Activity)
	for _, a := range activities {
		key := a.EffectiveDate.Format(entity.DateLayout)
		out[key] = append(out[key], a)
	}
	return out
}

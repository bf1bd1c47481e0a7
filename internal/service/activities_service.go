package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/internal/repository"
	"github.com/limbo/progressly/pkg/entity"
	"github.com/limbo/progressly/pkg/logger"
)

const DefaultDayStartHour = 4

type ActivitiesService struct {
	repo         repository.ActivitiesRepositoryI
	dayStartHour int
	log          *logger.Logger
}

// NewActivitiesService takes the hour at which a new day begins; sessions
// started earlier count for the previous date.
func NewActivitiesService(activitiesRepo repository.ActivitiesRepositoryI, dayStartHour int, lg *logger.Logger) *ActivitiesService {
	if activitiesRepo == nil {
		log.Fatal("provided nil activitiesRepo")
	}
	if lg == nil {
		lg = logger.Nop()
	}
	lg = lg.With("service", "ActivitiesService")
	if dayStartHour < 0 || dayStartHour > 23 {
		lg.Warn("day start hour out of range, using default", "given", dayStartHour, "default", DefaultDayStartHour)
		dayStartHour = DefaultDayStartHour
	}
	return &ActivitiesService{
		repo:         activitiesRepo,
		dayStartHour: dayStartHour,
		log:          lg,
	}
}

func (as *ActivitiesService) LogActivity(ctx context.Context, uid uuid.UUID, req *LogActivityRequest) (*entity.Activity, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("date is required"))
	}
	activity := entity.Activity{
		UserID:        uid,
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		CategoryID:    req.CategoryID,
		EffectiveDate: entity.EffectiveDateFor(req.Date, req.StartTime, as.dayStartHour),
	}
	id, err := as.repo.Create(ctx, &activity)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("activities repository error: %w", err)
	}
	activity.ID = id
	as.log.Debug("activity logged",
		"activity_id", id.String(),
		"uid", uid.String(),
		"effective_date", activity.EffectiveDate.Format(entity.DateLayout),
	)
	return &activity, nil
}

func (as *ActivitiesService) ListActivities(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Activity, error) {
	activities, err := as.repo.GetByUserAndDateRange(ctx, uid, entity.DateOnly(from), entity.DateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("activities repository error: %w", err)
	}
	return activities, nil
}

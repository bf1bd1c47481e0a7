package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/progressly/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type FrequencyRequest struct {
	Type string `json:"type" validate:"required,oneof=daily weekly"`
	Days []int  `json:"days" validate:"required_if=Type weekly,dive,min=0,max=6"`
}

type CommitmentRequest struct {
	ID        string           `json:"id" validate:"max=64"`
	Habit     string           `json:"habit" validate:"required,max=100"`
	Category  string           `json:"category" validate:"required,max=100"`
	Target    entity.Target    `json:"target"`
	Unit      string           `json:"unit" validate:"omitempty,oneof=hours minutes"`
	Frequency FrequencyRequest `json:"frequency"`
}

type CreateChallengeRequest struct {
	Name               string              `json:"name" validate:"required,max=200"`
	StartDate          time.Time           `json:"start_date"`
	DurationDays       int                 `json:"duration_days" validate:"required,min=1,max=365"`
	Commitments        []CommitmentRequest `json:"commitments" validate:"required,min=1,max=20,dive"`
	IdentityStatement  string              `json:"identity_statement" validate:"max=500"`
	WhyStatement       string              `json:"why_statement" validate:"max=500"`
	ObstaclePrediction string              `json:"obstacle_prediction" validate:"max=500"`
	SuccessThreshold   *int                `json:"success_threshold" validate:"omitempty,min=0,max=100"`
}

type LogActivityRequest struct {
	Name       string    `json:"name" validate:"required,max=200"`
	StartTime  string    `json:"start_time" validate:"required,clock"`
	EndTime    string    `json:"end_time" validate:"required,clock"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	// Calendar day the activity was logged on
	Date time.Time `json:"date"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type ChallengesServiceI interface {
	// Validates request, derives end date and stores the challenge. Only one active challenge per user
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *CreateChallengeRequest) (*entity.Challenge, error)
	// Returns challenge if uid owns it
	GetChallenge(ctx context.Context, uid, challengeID uuid.UUID) (*entity.Challenge, error)
	GetActiveChallenge(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error)
	UpdateStatus(ctx context.Context, uid, challengeID uuid.UUID, status entity.ChallengeStatus) error
}

type ActivitiesServiceI interface {
	// Validates and stores activity, attributing it to its effective date
	LogActivity(ctx context.Context, uid uuid.UUID, req *LogActivityRequest) (*entity.Activity, error)
	ListActivities(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Activity, error)
}

type CategoriesServiceI interface {
	// Stores a category owned by uid. Names are unique per user
	CreateCategory(ctx context.Context, uid uuid.UUID, req *CreateCategoryRequest) (*entity.Category, error)
	// Returns system defaults and categories of uid
	ListCategories(ctx context.Context, uid uuid.UUID) ([]entity.Category, error)
}

type MetricsServiceI interface {
	// Recomputes and stores metrics of a single challenge day from user's activities
	RecalculateDay(ctx context.Context, uid, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error)
	ListMetrics(ctx context.Context, uid, challengeID uuid.UUID) ([]entity.DailyChallengeMetrics, error)
	// Returns stored metrics of a single day
	GetDayMetrics(ctx context.Context, uid, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error)
	UpdateReflection(ctx context.Context, uid, challengeID uuid.UUID, date time.Time, r entity.Reflection) error
}

type PatternServiceI interface {
	// Runs all pattern detectors and stores what they found
	DetectPatterns(ctx context.Context, uid, challengeID uuid.UUID) ([]entity.BehaviorPattern, error)
	ListPatterns(ctx context.Context, uid, challengeID uuid.UUID) ([]entity.BehaviorPattern, error)
}

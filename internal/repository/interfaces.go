package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/progressly/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type ChallengesRepositoryI interface {
	// Creates new challenge and returns its id. Fails with ErrActiveChallengeExists
	// if the user already runs an active one
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Returns the only active challenge of user
	GetActiveByUserID(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error)
	// Moves challenge to given lifecycle status
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus) error
}

type ActivitiesRepositoryI interface {
	// Creates new activity and returns its id
	Create(ctx context.Context, activity *entity.Activity) (uuid.UUID, error)
	// Lists user's activities with effective date in [from, to], ordered by date and start time
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Activity, error)
}

type CategoriesRepositoryI interface {
	// Creates user category and returns its id. Fails with ErrCategoryExists on duplicate name
	Create(ctx context.Context, category *entity.Category) (uuid.UUID, error)
	// Lists system defaults first, then categories of user, each group ordered by name
	ListForUser(ctx context.Context, uid uuid.UUID) ([]entity.Category, error)
}

type DailyMetricsRepositoryI interface {
	// Inserts or overwrites the row for (challenge_id, date). Reflection fields are kept
	Upsert(ctx context.Context, metrics *entity.DailyChallengeMetrics) error
	// Returns rows strictly before date, ordered by date ascending
	GetBefore(ctx context.Context, challengeID uuid.UUID, date time.Time) ([]entity.DailyChallengeMetrics, error)
	// Returns whole history of challenge, ordered by date ascending
	GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.DailyChallengeMetrics, error)
	// Returns single day row
	GetByDate(ctx context.Context, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error)
	// Writes mood, energy and notes of an existing day
	UpdateReflection(ctx context.Context, challengeID uuid.UUID, date time.Time, r entity.Reflection) error
}

type PatternsRepositoryI interface {
	// Inserts or overwrites the row for (challenge_id, pattern_type)
	Upsert(ctx context.Context, pattern *entity.BehaviorPattern) error
	// Lists all detected patterns of challenge
	GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.BehaviorPattern, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

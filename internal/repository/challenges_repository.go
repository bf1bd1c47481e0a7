package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/pkg/entity"
)

const challengeColumns = `id, user_id, name, start_date, end_date, duration_days, commitments,
	identity_statement, why_statement, obstacle_prediction, success_threshold, status, created_at, updated_at`

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(conn PgConnection) *ChallengesRepository {
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	commitments, err := sonic.Marshal(challenge.Commitments)
	if err != nil {
		return uuid.Nil, errors.New("marshalling commitments error: " + err.Error())
	}
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO challenges (user_id, name, start_date, end_date, duration_days, commitments,
		identity_statement, why_statement, obstacle_prediction, success_threshold, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id;`,
		challenge.UserID,
		challenge.Name,
		challenge.StartDate,
		challenge.EndDate,
		challenge.DurationDays,
		commitments,
		challenge.IdentityStatement,
		challenge.WhyStatement,
		challenge.ObstaclePrediction,
		challenge.SuccessThreshold,
		string(challenge.Status),
	)
	if err = row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		// Partial unique index on active challenges
		case pgUniqueViolation:
			return uuid.Nil, errorvalues.ErrActiveChallengeExists
		}
		return uuid.Nil, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE id = $1;`, id)
	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return challenge, nil
}

func (cr *ChallengesRepository) GetActiveByUserID(ctx context.Context, uid uuid.UUID) (*entity.Challenge, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+challengeColumns+` FROM challenges WHERE user_id = $1 AND status = 'active';`, uid)
	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting active challenge error: " + err.Error())
	}
	return challenge, nil
}

func (cr *ChallengesRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ChallengeStatus) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE challenges SET status = $1, updated_at = NOW() WHERE id = $2;`, string(status), id)
	if err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrActiveChallengeExists
		}
		return errors.New("updating challenge status error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrChallengeNotFound
	}
	return nil
}

func scanChallenge(row pgx.Row) (*entity.Challenge, error) {
	var (
		c           entity.Challenge
		commitments []byte
		status      string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.StartDate, &c.EndDate, &c.DurationDays, &commitments,
		&c.IdentityStatement, &c.WhyStatement, &c.ObstaclePrediction, &c.SuccessThreshold, &status,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = entity.ChallengeStatus(status)
	if len(commitments) > 0 {
		if err = sonic.Unmarshal(commitments, &c.Commitments); err != nil {
			return nil, errors.New("unmarshalling commitments error: " + err.Error())
		}
	}
	return &c, nil
}

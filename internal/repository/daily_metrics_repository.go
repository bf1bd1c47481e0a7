package repository

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/pkg/entity"
)

const metricsColumns = `id, challenge_id, date, day_number, commitment_status, overall_completion_pct,
	consistency_score, diligence_score, cumulative_consistency_rate, cumulative_diligence_rate,
	day_of_week, streak_count, mood, energy_level, notes, created_at, updated_at`

type DailyMetricsRepository struct {
	conn PgConnection
}

func NewDailyMetricsRepo(conn PgConnection) *DailyMetricsRepository {
	return &DailyMetricsRepository{
		conn: conn,
	}
}

// Upsert relies on the (challenge_id, date) unique constraint, so two
// concurrent writers for the same day end up with a single row.
func (mr *DailyMetricsRepository) Upsert(ctx context.Context, m *entity.DailyChallengeMetrics) error {
	status, err := sonic.Marshal(m.CommitmentStatus)
	if err != nil {
		return errors.New("marshalling commitment status error: " + err.Error())
	}
	row := mr.conn.QueryRow(ctx, `INSERT INTO daily_challenge_metrics (challenge_id, date, day_number, commitment_status,
		overall_completion_pct, consistency_score, diligence_score, cumulative_consistency_rate, cumulative_diligence_rate,
		day_of_week, streak_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (challenge_id, date) DO UPDATE SET
			day_number = EXCLUDED.day_number,
			commitment_status = EXCLUDED.commitment_status,
			overall_completion_pct = EXCLUDED.overall_completion_pct,
			consistency_score = EXCLUDED.consistency_score,
			diligence_score = EXCLUDED.diligence_score,
			cumulative_consistency_rate = EXCLUDED.cumulative_consistency_rate,
			cumulative_diligence_rate = EXCLUDED.cumulative_diligence_rate,
			day_of_week = EXCLUDED.day_of_week,
			streak_count = EXCLUDED.streak_count,
			updated_at = NOW()
		RETURNING id, mood, energy_level, notes, created_at, updated_at;`,
		m.ChallengeID,
		m.Date,
		m.DayNumber,
		status,
		m.OverallCompletionPct,
		m.ConsistencyScore,
		m.DiligenceScore,
		m.CumulativeConsistencyRate,
		m.CumulativeDiligenceRate,
		m.DayOfWeek,
		m.StreakCount,
	)
	if err = row.Scan(&m.ID, &m.Mood, &m.EnergyLevel, &m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		switch pgErrCode(err) {
		case pgForeignKeyViolation:
			return errorvalues.ErrChallengeNotFound
		}
		return errors.New("upserting daily metrics error: " + err.Error())
	}
	return nil
}

func (mr *DailyMetricsRepository) GetBefore(ctx context.Context, challengeID uuid.UUID, date time.Time) ([]entity.DailyChallengeMetrics, error) {
	return mr.list(ctx, `SELECT `+metricsColumns+` FROM daily_challenge_metrics
		WHERE challenge_id = $1 AND date < $2 ORDER BY date ASC;`, challengeID, date)
}

func (mr *DailyMetricsRepository) GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.DailyChallengeMetrics, error) {
	return mr.list(ctx, `SELECT `+metricsColumns+` FROM daily_challenge_metrics
		WHERE challenge_id = $1 ORDER BY date ASC;`, challengeID)
}

func (mr *DailyMetricsRepository) GetByDate(ctx context.Context, challengeID uuid.UUID, date time.Time) (*entity.DailyChallengeMetrics, error) {
	row := mr.conn.QueryRow(ctx, `SELECT `+metricsColumns+` FROM daily_challenge_metrics
		WHERE challenge_id = $1 AND date = $2;`, challengeID, date)
	m, err := scanMetrics(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrMetricsNotFound
		}
		return nil, errors.New("getting daily metrics error: " + err.Error())
	}
	return m, nil
}

func (mr *DailyMetricsRepository) UpdateReflection(ctx context.Context, challengeID uuid.UUID, date time.Time, r entity.Reflection) error {
	ct, err := mr.conn.Exec(ctx, `UPDATE daily_challenge_metrics SET mood = $1, energy_level = $2, notes = $3, updated_at = NOW()
		WHERE challenge_id = $4 AND date = $5;`,
		r.Mood, r.EnergyLevel, r.Notes, challengeID, date,
	)
	if err != nil {
		return errors.New("updating reflection error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrMetricsNotFound
	}
	return nil
}

func (mr *DailyMetricsRepository) list(ctx context.Context, query string, args ...any) ([]entity.DailyChallengeMetrics, error) {
	rows, err := mr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing daily metrics error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyChallengeMetrics, 0)
	for rows.Next() {
		m, err := scanMetrics(rows)
		if err != nil {
			return nil, errors.New("daily metrics row parsing error: " + err.Error())
		}
		result = append(result, *m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected daily metrics rows error: " + err.Error())
	}
	return result, nil
}

func scanMetrics(row pgx.Row) (*entity.DailyChallengeMetrics, error) {
	var (
		m      entity.DailyChallengeMetrics
		status []byte
	)
	err := row.Scan(&m.ID, &m.ChallengeID, &m.Date, &m.DayNumber, &status, &m.OverallCompletionPct,
		&m.ConsistencyScore, &m.DiligenceScore, &m.CumulativeConsistencyRate, &m.CumulativeDiligenceRate,
		&m.DayOfWeek, &m.StreakCount, &m.Mood, &m.EnergyLevel, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(status) > 0 {
		if err = sonic.Unmarshal(status, &m.CommitmentStatus); err != nil {
			return nil, errors.New("unmarshalling commitment status error: " + err.Error())
		}
	}
	return &m, nil
}

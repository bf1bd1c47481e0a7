package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Create(ctx context.Context, activity *entity.Activity) (uuid.UUID, error) {
	var id uuid.UUID
	row := ar.conn.QueryRow(ctx, `INSERT INTO activities (user_id, name, start_time, end_time, category_id, effective_date)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		activity.UserID,
		activity.Name,
		activity.StartTime,
		activity.EndTime,
		activity.CategoryID,
		activity.EffectiveDate,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		// FK violation
		case pgForeignKeyViolation:
			return uuid.Nil, errorvalues.ErrCategoryNotFound
		}
		return uuid.Nil, errors.New("creating activity db error: " + err.Error())
	}
	return id, nil
}

func (ar *ActivitiesRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Activity, error) {
	rows, err := ar.conn.Query(ctx, `SELECT a.id, a.user_id, a.name, to_char(a.start_time, 'HH24:MI'), to_char(a.end_time, 'HH24:MI'),
		a.category_id, c.name, a.effective_date, a.created_at
		FROM activities a JOIN categories c ON c.id = a.category_id
		WHERE a.user_id = $1 AND a.effective_date >= $2 AND a.effective_date <= $3
		ORDER BY a.effective_date ASC, a.start_time ASC;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting activities for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Activity, 0)
	for rows.Next() {
		a := entity.Activity{}
		err = rows.Scan(&a.ID, &a.UserID, &a.Name, &a.StartTime, &a.EndTime, &a.CategoryID, &a.CategoryName, &a.EffectiveDate, &a.CreatedAt)
		if err != nil {
			return nil, errors.New("activity row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected activity rows error: " + err.Error())
	}
	return result, nil
}

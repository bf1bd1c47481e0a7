package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/pkg/entity"
)

type CategoriesRepository struct {
	conn PgConnection
}

func NewCategoriesRepo(conn PgConnection) *CategoriesRepository {
	return &CategoriesRepository{
		conn: conn,
	}
}

func (cr *CategoriesRepository) Create(ctx context.Context, category *entity.Category) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO categories (user_id, name, color) VALUES ($1, $2, $3) RETURNING id;`,
		category.UserID,
		category.Name,
		category.Color,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return uuid.Nil, errorvalues.ErrCategoryExists
		}
		return uuid.Nil, errors.New("creating category db error: " + err.Error())
	}
	return id, nil
}

// ListForUser puts system defaults (user_id IS NULL) before the user's own ones.
func (cr *CategoriesRepository) ListForUser(ctx context.Context, uid uuid.UUID) ([]entity.Category, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, name, color FROM categories
		WHERE user_id = $1 OR user_id IS NULL
		ORDER BY user_id NULLS FIRST, name ASC;`, uid)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
			return nil, errors.New("category row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected category rows error: " + err.Error())
	}
	return result, nil
}

package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/progressly/internal/error_values"
	"github.com/limbo/progressly/pkg/entity"
)

type PatternsRepository struct {
	conn PgConnection
}

func NewPatternsRepo(conn PgConnection) *PatternsRepository {
	return &PatternsRepository{
		conn: conn,
	}
}

func (pr *PatternsRepository) Upsert(ctx context.Context, p *entity.BehaviorPattern) error {
	if p.Data == nil {
		return errors.New("pattern has no payload")
	}
	data, err := sonic.Marshal(p.Data)
	if err != nil {
		return errors.New("marshalling pattern payload error: " + err.Error())
	}
	row := pr.conn.QueryRow(ctx, `INSERT INTO behavior_patterns (challenge_id, pattern_type, pattern_data, confidence_score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (challenge_id, pattern_type) DO UPDATE SET
			pattern_data = EXCLUDED.pattern_data,
			confidence_score = EXCLUDED.confidence_score,
			last_updated = NOW()
		RETURNING id, last_updated;`,
		p.ChallengeID,
		string(p.Type),
		data,
		p.Confidence,
	)
	if err = row.Scan(&p.ID, &p.LastUpdated); err != nil {
		switch pgErrCode(err) {
		case pgForeignKeyViolation:
			return errorvalues.ErrChallengeNotFound
		}
		return errors.New("upserting pattern error: " + err.Error())
	}
	return nil
}

func (pr *PatternsRepository) GetByChallengeID(ctx context.Context, challengeID uuid.UUID) ([]entity.BehaviorPattern, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, challenge_id, pattern_type, pattern_data, confidence_score, last_updated
		FROM behavior_patterns WHERE challenge_id = $1 ORDER BY pattern_type ASC;`, challengeID)
	if err != nil {
		return nil, errors.New("listing patterns error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.BehaviorPattern, 0, 4)
	for rows.Next() {
		var (
			p     entity.BehaviorPattern
			ptype string
			raw   []byte
		)
		if err = rows.Scan(&p.ID, &p.ChallengeID, &ptype, &raw, &p.Confidence, &p.LastUpdated); err != nil {
			return nil, errors.New("pattern row parsing error: " + err.Error())
		}
		p.Type = entity.PatternType(ptype)
		p.Data, err = entity.DecodePatternPayload(p.Type, raw)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected pattern rows error: " + err.Error())
	}
	return result, nil
}

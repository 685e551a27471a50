package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TagRepo struct {
	pool *pgxpool.Pool
}

func NewTagRepo(pool *pgxpool.Pool) *TagRepo {
	return &TagRepo{pool: pool}
}

func (r *TagRepo) CreateBatch(ctx context.Context, peepID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, uid := range userIDs {
		batch.Queue("INSERT INTO tags (peep_id, user_id) VALUES ($1, $2)", peepID, uid)
	}

	return r.pool.SendBatch(ctx, batch).Close()
}

func (r *TagRepo) ListUsernamesForPeep(ctx context.Context, peepID int64) ([]string, error) {
	query := `
		SELECT u.username
		FROM tags t
		JOIN users u ON t.user_id = u.id
		WHERE t.peep_id = $1
		ORDER BY t.id`

	rows, err := r.pool.Query(ctx, query, peepID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var usernames []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		usernames = append(usernames, name)
	}
	return usernames, rows.Err()
}

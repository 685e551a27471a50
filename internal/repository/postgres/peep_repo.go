package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peepapp/chitter/internal/domain"
)

const peepColumns = `
	p.id, p.message, p.user_id, p.parent_peep_id, p.created_at,
	u.name, u.username`

type PeepRepo struct {
	pool *pgxpool.Pool
}

func NewPeepRepo(pool *pgxpool.Pool) *PeepRepo {
	return &PeepRepo{pool: pool}
}

func (r *PeepRepo) Create(ctx context.Context, peep *domain.Peep) error {
	query := `
		INSERT INTO peeps (message, user_id, parent_peep_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		peep.Message, peep.UserID, peep.ParentID,
	).Scan(&peep.ID, &peep.CreatedAt)
}

func (r *PeepRepo) GetByID(ctx context.Context, id int64) (*domain.Peep, error) {
	query := `
		SELECT ` + peepColumns + `
		FROM peeps p
		JOIN users u ON p.user_id = u.id
		WHERE p.id = $1`

	var p domain.Peep
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Message, &p.UserID, &p.ParentID, &p.CreatedAt,
		&p.AuthorName, &p.AuthorUsername,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PeepRepo) ListWithAuthors(ctx context.Context) ([]domain.Peep, error) {
	query := `
		SELECT ` + peepColumns + `
		FROM peeps p
		JOIN users u ON p.user_id = u.id
		ORDER BY p.id`

	return r.listPeeps(ctx, query)
}

func (r *PeepRepo) ListReplies(ctx context.Context, parentID int64) ([]domain.Peep, error) {
	query := `
		SELECT ` + peepColumns + `
		FROM peeps p
		JOIN users u ON p.user_id = u.id
		WHERE p.parent_peep_id = $1
		ORDER BY p.id`

	return r.listPeeps(ctx, query, parentID)
}

func (r *PeepRepo) listPeeps(ctx context.Context, query string, args ...any) ([]domain.Peep, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var peeps []domain.Peep
	for rows.Next() {
		var p domain.Peep
		if err := rows.Scan(
			&p.ID, &p.Message, &p.UserID, &p.ParentID, &p.CreatedAt,
			&p.AuthorName, &p.AuthorUsername,
		); err != nil {
			return nil, err
		}
		peeps = append(peeps, p)
	}
	return peeps, rows.Err()
}

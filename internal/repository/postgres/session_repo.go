package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peepapp/chitter/internal/domain"
)

type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

func (r *SessionRepo) Create(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at`

	return r.pool.QueryRow(ctx, query, session.ID, session.UserID).Scan(&session.CreatedAt)
}

func (r *SessionRepo) GetUserID(ctx context.Context, id string) (int64, bool, error) {
	var userID int64
	err := r.pool.QueryRow(ctx, "SELECT user_id FROM sessions WHERE id = $1", id).Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return userID, true, nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM sessions WHERE id = $1", id)
	return err
}

package repository

import (
	"context"
	"errors"

	"github.com/peepapp/chitter/internal/domain"
)

// ErrDuplicateEmail reports a unique-constraint conflict on users.email.
// It is the only store failure callers are expected to branch on.
var ErrDuplicateEmail = errors.New("email already exists")

type UserRepository interface {
	// Create persists the user and fills in the store-assigned ID.
	// Returns ErrDuplicateEmail when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByCredentials matches email and password exactly.
	// A missing match is (nil, nil), not an error.
	GetByCredentials(ctx context.Context, email, password string) (*domain.User, error)
	// ListIDsByUsernames returns ids for the usernames that exist,
	// in no particular order. Unknown names are omitted.
	ListIDsByUsernames(ctx context.Context, usernames []string) ([]int64, error)
}

type PeepRepository interface {
	// Create persists the peep and fills in the store-assigned ID.
	Create(ctx context.Context, peep *domain.Peep) error
	// GetByID returns the peep joined with its author, or (nil, nil).
	GetByID(ctx context.Context, id int64) (*domain.Peep, error)
	// ListWithAuthors returns every peep with its author, oldest first.
	ListWithAuthors(ctx context.Context) ([]domain.Peep, error)
	// ListReplies returns the direct replies to a peep, oldest first.
	ListReplies(ctx context.Context, parentID int64) ([]domain.Peep, error)
}

type TagRepository interface {
	// CreateBatch inserts one tag row per user id for the given peep.
	CreateBatch(ctx context.Context, peepID int64, userIDs []int64) error
	ListUsernamesForPeep(ctx context.Context, peepID int64) ([]string, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetUserID resolves a session token to a user id.
	// An unknown token is (0, false, nil).
	GetUserID(ctx context.Context, id string) (int64, bool, error)
	Delete(ctx context.Context, id string) error
}

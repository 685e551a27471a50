package handlers

import (
	"context"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/service"
)

// Capability sets the handlers depend on. The concrete services in
// internal/service satisfy them.

type UserDirectory interface {
	Register(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

type PeepStore interface {
	Create(ctx context.Context, input service.CreatePeepInput) (int64, error)
	ListWithAuthors(ctx context.Context) ([]domain.Peep, error)
	GetByID(ctx context.Context, id int64) (*domain.Peep, error)
	Replies(ctx context.Context, parentID int64) ([]domain.Peep, error)
}

type TaggingService interface {
	TagUsers(ctx context.Context, peepID int64, rawTags string) error
	TaggedUsernames(ctx context.Context, peepID int64) ([]string, error)
}

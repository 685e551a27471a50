package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/repository"
)

// ErrEmailTaken is returned by Register when the email is already in use.
var ErrEmailTaken = errors.New("email already taken")

// UserService is the user directory: it creates accounts, authenticates
// credentials and resolves usernames to ids for tagging.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Username string
}

// Register persists a new user. Email uniqueness is enforced by the store's
// unique constraint; a conflict surfaces as ErrEmailTaken.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	user := &domain.User{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Username: input.Username,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return user, nil
}

// Authenticate matches email and password exactly against stored
// credentials. A mismatch is (nil, nil): an expected outcome, not an error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetByCredentials(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("looking up credentials: %w", err)
	}
	return user, nil
}

// ResolveUsernames returns the ids of the usernames that exist.
// Unknown names are omitted, not errored.
func (s *UserService) ResolveUsernames(ctx context.Context, usernames []string) ([]int64, error) {
	if len(usernames) == 0 {
		return nil, nil
	}

	ids, err := s.userRepo.ListIDsByUsernames(ctx, usernames)
	if err != nil {
		return nil, fmt.Errorf("resolving usernames: %w", err)
	}
	return ids, nil
}

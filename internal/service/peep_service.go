package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/repository"
)

var (
	ErrEmptyMessage   = errors.New("peep message must not be empty")
	ErrParentNotFound = errors.New("reply target does not exist")
)

// PeepService is the peep store. Reads never mutate; all listings are in
// insertion order, oldest first.
type PeepService struct {
	peepRepo repository.PeepRepository
}

func NewPeepService(peepRepo repository.PeepRepository) *PeepService {
	return &PeepService{peepRepo: peepRepo}
}

type CreatePeepInput struct {
	Message  string
	AuthorID int64
	// ParentID, when set, makes the peep a reply to an existing peep.
	ParentID *int64
}

// Create persists a peep and returns its store-assigned id. The id is
// available on return so tagging can run against it immediately.
func (s *PeepService) Create(ctx context.Context, input CreatePeepInput) (int64, error) {
	if input.Message == "" {
		return 0, ErrEmptyMessage
	}

	if input.ParentID != nil {
		parent, err := s.peepRepo.GetByID(ctx, *input.ParentID)
		if err != nil {
			return 0, fmt.Errorf("checking reply target: %w", err)
		}
		if parent == nil {
			return 0, ErrParentNotFound
		}
	}

	peep := &domain.Peep{
		Message:  input.Message,
		UserID:   input.AuthorID,
		ParentID: input.ParentID,
	}

	if err := s.peepRepo.Create(ctx, peep); err != nil {
		return 0, fmt.Errorf("creating peep: %w", err)
	}

	return peep.ID, nil
}

// ListWithAuthors returns every peep joined with its author.
func (s *PeepService) ListWithAuthors(ctx context.Context) ([]domain.Peep, error) {
	peeps, err := s.peepRepo.ListWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing peeps: %w", err)
	}
	return peeps, nil
}

// GetByID returns the peep with its author, or (nil, nil) when absent.
func (s *PeepService) GetByID(ctx context.Context, id int64) (*domain.Peep, error) {
	peep, err := s.peepRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding peep: %w", err)
	}
	return peep, nil
}

// Replies returns the direct replies to a peep, one level deep.
// A reply to a reply shows up only under its immediate parent.
func (s *PeepService) Replies(ctx context.Context, parentID int64) ([]domain.Peep, error) {
	replies, err := s.peepRepo.ListReplies(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing replies: %w", err)
	}
	return replies, nil
}

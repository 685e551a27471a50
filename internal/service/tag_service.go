package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/peepapp/chitter/internal/repository"
)

// UsernameResolver resolves usernames to user ids, omitting unknown names.
// Implemented by UserService.
type UsernameResolver interface {
	ResolveUsernames(ctx context.Context, usernames []string) ([]int64, error)
}

// TagService associates tagged users with a peep.
type TagService struct {
	tagRepo repository.TagRepository
	users   UsernameResolver
}

func NewTagService(tagRepo repository.TagRepository, users UsernameResolver) *TagService {
	return &TagService{tagRepo: tagRepo, users: users}
}

// TagUsers splits rawTags on commas and whitespace, resolves each token
// through the user directory and creates one tag row per resolved user.
// Tokens that resolve to nobody are skipped silently; an empty or
// all-unresolvable list is a no-op.
func (s *TagService) TagUsers(ctx context.Context, peepID int64, rawTags string) error {
	usernames := splitTags(rawTags)
	if len(usernames) == 0 {
		return nil
	}

	ids, err := s.users.ResolveUsernames(ctx, usernames)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	if err := s.tagRepo.CreateBatch(ctx, peepID, ids); err != nil {
		return fmt.Errorf("creating tags: %w", err)
	}
	return nil
}

// TaggedUsernames returns the usernames tagged in a peep.
func (s *TagService) TaggedUsernames(ctx context.Context, peepID int64) ([]string, error) {
	usernames, err := s.tagRepo.ListUsernamesForPeep(ctx, peepID)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	return usernames, nil
}

func splitTags(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

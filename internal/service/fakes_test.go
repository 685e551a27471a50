package service

import (
	"context"
	"time"

	"github.com/peepapp/chitter/internal/domain"
	"github.com/peepapp/chitter/internal/repository"
)

// In-memory fakes standing in for the relational store. IDs are assigned
// sequentially from 1, matching the store contract.

type memUserRepo struct {
	users  []domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListIDsByUsernames(ctx context.Context, usernames []string) ([]int64, error) {
	var ids []int64
	for _, name := range usernames {
		for _, u := range r.users {
			if u.Username == name {
				ids = append(ids, u.ID)
				break
			}
		}
	}
	return ids, nil
}

type memPeepRepo struct {
	peeps  []domain.Peep
	users  *memUserRepo
	nextID int64
}

func newMemPeepRepo(users *memUserRepo) *memPeepRepo {
	return &memPeepRepo{users: users, nextID: 1}
}

func (r *memPeepRepo) Create(ctx context.Context, peep *domain.Peep) error {
	peep.ID = r.nextID
	peep.CreatedAt = time.Now()
	r.nextID++
	r.peeps = append(r.peeps, *peep)
	return nil
}

func (r *memPeepRepo) GetByID(ctx context.Context, id int64) (*domain.Peep, error) {
	for _, p := range r.peeps {
		if p.ID == id {
			return r.joined(p), nil
		}
	}
	return nil, nil
}

func (r *memPeepRepo) ListWithAuthors(ctx context.Context) ([]domain.Peep, error) {
	var out []domain.Peep
	for _, p := range r.peeps {
		out = append(out, *r.joined(p))
	}
	return out, nil
}

func (r *memPeepRepo) ListReplies(ctx context.Context, parentID int64) ([]domain.Peep, error) {
	var out []domain.Peep
	for _, p := range r.peeps {
		if p.ParentID != nil && *p.ParentID == parentID {
			out = append(out, *r.joined(p))
		}
	}
	return out, nil
}

func (r *memPeepRepo) joined(p domain.Peep) *domain.Peep {
	if u, _ := r.users.GetByID(context.Background(), p.UserID); u != nil {
		p.AuthorName = u.Name
		p.AuthorUsername = u.Username
	}
	return &p
}

type memTagRepo struct {
	tags   []domain.Tag
	users  *memUserRepo
	nextID int64
}

func newMemTagRepo(users *memUserRepo) *memTagRepo {
	return &memTagRepo{users: users, nextID: 1}
}

func (r *memTagRepo) CreateBatch(ctx context.Context, peepID int64, userIDs []int64) error {
	for _, uid := range userIDs {
		r.tags = append(r.tags, domain.Tag{ID: r.nextID, PeepID: peepID, UserID: uid})
		r.nextID++
	}
	return nil
}

func (r *memTagRepo) ListUsernamesForPeep(ctx context.Context, peepID int64) ([]string, error) {
	var usernames []string
	for _, t := range r.tags {
		if t.PeepID != peepID {
			continue
		}
		if u, _ := r.users.GetByID(ctx, t.UserID); u != nil {
			usernames = append(usernames, u.Username)
		}
	}
	return usernames, nil
}

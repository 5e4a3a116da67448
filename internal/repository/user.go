package repository

import (
	"context"
	"slices"
	"sync"

	"ecommerce/internal/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	items  []domain.User
	nextID int
}

func NewUserRepository(seed []domain.User) *UserRepository {
	r := &UserRepository{items: slices.Clone(seed), nextID: 101}
	for _, u := range seed {
		r.nextID = max(r.nextID, u.ID+1)
	}
	return r
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *UserRepository) Get(ctx context.Context, id int) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return domain.User{}, ErrNotFound
	}
	return r.items[i], nil
}

// Create stores u as an active user. It returns ErrEmailExists when the email
// is already taken and the number of active users after the insert.
func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, int, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.emailTaken(u.Email, 0) {
		return domain.User{}, 0, ErrEmailExists
	}
	u.ID = r.nextID
	u.Active = true
	r.nextID++
	r.items = append(r.items, u)
	return u, r.activeLocked(), nil
}

func (r *UserRepository) Update(ctx context.Context, id int, apply func(domain.User) domain.User) (domain.User, error) {
	if err := ctx.Err(); err != nil {
		return domain.User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.User{}, ErrNotFound
	}
	updated := apply(r.items[i])
	updated.ID = id
	updated.Active = r.items[i].Active
	if updated.Email != r.items[i].Email && r.emailTaken(updated.Email, id) {
		return domain.User{}, ErrEmailExists
	}
	r.items[i] = updated
	return updated, nil
}

// Deactivate marks user id inactive. Deactivating an inactive user is a no-op.
// It returns the number of active users afterwards.
func (r *UserRepository) Deactivate(ctx context.Context, id int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return 0, ErrNotFound
	}
	r.items[i].Active = false
	return r.activeLocked(), nil
}

func (r *UserRepository) ActiveCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeLocked(), nil
}

func (r *UserRepository) activeLocked() int {
	n := 0
	for _, u := range r.items {
		if u.Active {
			n++
		}
	}
	return n
}

func (r *UserRepository) emailTaken(email string, except int) bool {
	return slices.ContainsFunc(r.items, func(u domain.User) bool {
		return u.ID != except && u.Email == email
	})
}

func (r *UserRepository) index(id int) int {
	return slices.IndexFunc(r.items, func(u domain.User) bool { return u.ID == id })
}

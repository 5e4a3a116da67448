package repository

import (
	"context"
	"slices"
	"sync"

	"ecommerce/internal/domain"
)

type ProductRepository struct {
	mu     sync.RWMutex
	items  []domain.Product
	nextID int
}

func NewProductRepository(seed []domain.Product) *ProductRepository {
	r := &ProductRepository{items: slices.Clone(seed), nextID: 1}
	for _, p := range seed {
		r.nextID = max(r.nextID, p.ID+1)
	}
	return r
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

func (r *ProductRepository) Get(ctx context.Context, id int) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return domain.Product{}, ErrNotFound
	}
	return r.items[i], nil
}

// Create stores p under a freshly assigned id and returns the stored product.
func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.items = append(r.items, p)
	return p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int, apply func(domain.Product) domain.Product) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.Product{}, ErrNotFound
	}
	updated := apply(r.items[i])
	updated.ID = id
	r.items[i] = updated
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return ErrNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

func (r *ProductRepository) index(id int) int {
	return slices.IndexFunc(r.items, func(p domain.Product) bool { return p.ID == id })
}

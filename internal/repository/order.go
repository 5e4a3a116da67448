package repository

import (
	"context"
	"slices"
	"sync"

	"ecommerce/internal/domain"
)

type OrderRepository struct {
	mu     sync.RWMutex
	items  []domain.Order
	nextID int
	now    clock
}

func NewOrderRepository(seed []domain.Order) *OrderRepository {
	r := &OrderRepository{nextID: 1, now: utcNow}
	for _, o := range seed {
		r.items = append(r.items, cloneOrder(o))
		r.nextID = max(r.nextID, o.ID+1)
	}
	return r
}

// NextID reserves an id for an order about to be created.
func (r *OrderRepository) NextID(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return id, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Order, len(r.items))
	for i, o := range r.items {
		out[i] = cloneOrder(o)
	}
	return out, nil
}

func (r *OrderRepository) Get(ctx context.Context, id int) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(id)
	if i < 0 {
		return domain.Order{}, ErrNotFound
	}
	return cloneOrder(r.items[i]), nil
}

// Create stores o with an id previously reserved through NextID. CreatedAt is
// stamped when unset.
func (r *OrderRepository) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = r.now()
	}
	o = cloneOrder(o)
	r.items = append(r.items, o)
	return cloneOrder(o), nil
}

// UpdateStatus sets the status of order id and returns the updated order with
// the status it replaced.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) (domain.Order, string, error) {
	if err := ctx.Err(); err != nil {
		return domain.Order{}, "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return domain.Order{}, "", ErrNotFound
	}
	previous := r.items[i].Status
	r.items[i].Status = status
	return cloneOrder(r.items[i]), previous, nil
}

func (r *OrderRepository) index(id int) int {
	return slices.IndexFunc(r.items, func(o domain.Order) bool { return o.ID == id })
}

func cloneOrder(o domain.Order) domain.Order {
	o.Products = slices.Clone(o.Products)
	return o
}

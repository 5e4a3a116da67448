package repository

import (
	"context"
	"slices"
	"sync"

	"ecommerce/internal/domain"
)

type CartRepository struct {
	mu     sync.RWMutex
	items  []domain.Cart
	nextID int
	now    clock
}

func NewCartRepository(seed []domain.Cart) *CartRepository {
	r := &CartRepository{nextID: 1, now: utcNow}
	for _, c := range seed {
		r.items = append(r.items, cloneCart(c))
		r.nextID = max(r.nextID, c.ID+1)
	}
	return r
}

func (r *CartRepository) GetByUser(ctx context.Context, userID int) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(userID)
	if i < 0 {
		return domain.Cart{}, ErrNotFound
	}
	return cloneCart(r.items[i]), nil
}

// Replace sets the contents of the user's cart, creating the cart when the
// user has none. It reports whether a cart was created.
func (r *CartRepository) Replace(ctx context.Context, userID int, products []domain.CartItem) (domain.Cart, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, created := r.ensure(userID)
	r.items[i].Products = slices.Clone(products)
	if r.items[i].Products == nil {
		r.items[i].Products = []domain.CartItem{}
	}
	r.items[i].LastUpdated = r.now()
	return cloneCart(r.items[i]), created, nil
}

// AddItem adds quantity of productID to the user's cart, merging with an
// existing line for the same product.
func (r *CartRepository) AddItem(ctx context.Context, userID, productID, quantity int) (domain.Cart, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i, created := r.ensure(userID)
	cart := &r.items[i]
	line := slices.IndexFunc(cart.Products, func(it domain.CartItem) bool { return it.ProductID == productID })
	if line >= 0 {
		cart.Products[line].Quantity += quantity
	} else {
		cart.Products = append(cart.Products, domain.CartItem{ProductID: productID, Quantity: quantity})
	}
	cart.LastUpdated = r.now()
	return cloneCart(*cart), created, nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, userID, productID int) (domain.Cart, error) {
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(userID)
	if i < 0 {
		return domain.Cart{}, ErrNotFound
	}
	cart := &r.items[i]
	cart.Products = slices.DeleteFunc(cart.Products, func(it domain.CartItem) bool { return it.ProductID == productID })
	cart.LastUpdated = r.now()
	return cloneCart(*cart), nil
}

// Clear empties the user's cart and returns the lines it removed.
func (r *CartRepository) Clear(ctx context.Context, userID int) ([]domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(userID)
	if i < 0 {
		return nil, ErrNotFound
	}
	removed := r.items[i].Products
	r.items[i].Products = []domain.CartItem{}
	r.items[i].LastUpdated = r.now()
	return removed, nil
}

func (r *CartRepository) ensure(userID int) (int, bool) {
	if i := r.index(userID); i >= 0 {
		return i, false
	}
	r.items = append(r.items, domain.Cart{
		ID:          r.nextID,
		UserID:      userID,
		Products:    []domain.CartItem{},
		LastUpdated: r.now(),
	})
	r.nextID++
	return len(r.items) - 1, true
}

func (r *CartRepository) index(userID int) int {
	return slices.IndexFunc(r.items, func(c domain.Cart) bool { return c.UserID == userID })
}

func cloneCart(c domain.Cart) domain.Cart {
	c.Products = slices.Clone(c.Products)
	return c
}

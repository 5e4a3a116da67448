package service

import (
	"context"
	"fmt"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
)

type CartService struct {
	repo     CartStore
	products ProductNamer
	recorder EventRecorder
}

func NewCartService(repo CartStore, products ProductNamer, recorder EventRecorder) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		recorder: recorder,
	}
}

func (s *CartService) Get(ctx context.Context, userID int) (domain.Cart, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityCart)
	cart, err := s.repo.GetByUser(ctx, userID)
	stop()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to get cart: %w", translate(err))
	}
	return cart, nil
}

// Replace overwrites the user's cart. The bool reports whether the cart was
// created by this call.
func (s *CartService) Replace(ctx context.Context, userID int, req domain.ReplaceCartRequest) (domain.Cart, bool, error) {
	timer := metrics.StartTimer()
	cart, created, err := s.repo.Replace(ctx, userID, req.Products)
	s.observeUpsert(timer, created)
	if err != nil {
		return domain.Cart{}, false, fmt.Errorf("failed to replace cart: %w", err)
	}
	return cart, created, nil
}

func (s *CartService) AddItem(ctx context.Context, userID int, req domain.AddCartItemRequest) (domain.Cart, error) {
	quantity := max(1, req.Quantity)

	timer := metrics.StartTimer()
	cart, created, err := s.repo.AddItem(ctx, userID, req.ProductID, quantity)
	s.observeUpsert(timer, created)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to add cart item: %w", err)
	}

	s.cartOperation(ctx, userID, req.ProductID, metrics.CartAdd)
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID int) (domain.Cart, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityCart)
	cart, err := s.repo.RemoveItem(ctx, userID, productID)
	stop()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to remove cart item: %w", translate(err))
	}

	s.cartOperation(ctx, userID, productID, metrics.CartRemove)
	return cart, nil
}

// Clear empties the cart, reporting one clear operation per removed line.
func (s *CartService) Clear(ctx context.Context, userID int) error {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityCart)
	removed, err := s.repo.Clear(ctx, userID)
	stop()
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", translate(err))
	}

	for _, item := range removed {
		s.cartOperation(ctx, userID, item.ProductID, metrics.CartClear)
	}
	return nil
}

// observeUpsert records the store call as a create or an update depending on
// whether it created the cart, which is only known afterwards.
func (s *CartService) observeUpsert(timer metrics.Timer, created bool) {
	op := metrics.OpUpdate
	if created {
		op = metrics.OpCreate
	}
	s.recorder.ObserveStoreOperation(op, metrics.EntityCart, timer.Elapsed())
}

func (s *CartService) cartOperation(ctx context.Context, userID, productID int, op metrics.CartOperation) {
	s.recorder.RecordCartOperation(metrics.CartOperationEvent{
		UserID:      userID,
		ProductID:   productID,
		ProductName: s.products.Name(ctx, productID),
		Operation:   op,
	})
}

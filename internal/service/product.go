package service

import (
	"context"
	"fmt"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
)

type ProductService struct {
	repo     ProductStore
	cache    Cache
	recorder EventRecorder
}

func NewProductService(repo ProductStore, cache Cache, recorder EventRecorder) *ProductService {
	return &ProductService{
		repo:     repo,
		cache:    cache,
		recorder: recorder,
	}
}

func (s *ProductService) List(ctx context.Context, actor domain.Actor) ([]domain.Product, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityProduct)
	products, err := s.repo.List(ctx)
	stop()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	recordActivity(s.recorder, actor, domain.AnonymousUser, metrics.ActivityBrowseProducts)
	return products, nil
}

// Get returns product id and counts it as viewed.
func (s *ProductService) Get(ctx context.Context, id int, actor domain.Actor) (domain.Product, error) {
	p, err := s.lookup(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	s.recorder.RecordProductViewed(productEvent(p))
	recordActivity(s.recorder, actor, domain.AnonymousUser, metrics.ActivityViewProduct)
	return p, nil
}

// Name returns the name of product id, or a generic label when the product
// does not exist. It does not count as a view.
func (s *ProductService) Name(ctx context.Context, id int) string {
	p, err := s.lookup(ctx, id)
	if err != nil {
		return productLabel(id)
	}
	return p.Name
}

func (s *ProductService) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpCreate, metrics.EntityProduct)
	p, err := s.repo.Create(ctx, domain.Product{
		Name:     req.Name,
		Price:    req.Price,
		Stock:    req.Stock,
		Category: req.Category,
	})
	stop()
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.recorder.RecordProductCreated(productEvent(p))
	recordActivity(s.recorder, req.Actor, domain.AdminUser, metrics.ActivityCreateProduct)
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id int, req domain.UpdateProductRequest) (domain.Product, error) {
	stop := s.recorder.TimeStoreOperation(metrics.OpUpdate, metrics.EntityProduct)
	p, err := s.repo.Update(ctx, id, req.Apply)
	stop()
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to update product: %w", translate(err))
	}
	s.cache.Del(id)

	recordActivity(s.recorder, req.Actor, domain.AdminUser, metrics.ActivityUpdateProduct)
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id int, actor domain.Actor) error {
	stop := s.recorder.TimeStoreOperation(metrics.OpDelete, metrics.EntityProduct)
	err := s.repo.Delete(ctx, id)
	stop()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", translate(err))
	}
	s.cache.Del(id)

	recordActivity(s.recorder, actor, domain.AdminUser, metrics.ActivityDeleteProduct)
	return nil
}

func (s *ProductService) lookup(ctx context.Context, id int) (domain.Product, error) {
	if p, ok := s.cache.Get(id); ok {
		return p, nil
	}

	stop := s.recorder.TimeStoreOperation(metrics.OpRead, metrics.EntityProduct)
	p, err := s.repo.Get(ctx, id)
	stop()
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to get product: %w", translate(err))
	}
	s.cache.Set(p)
	return p, nil
}

func productEvent(p domain.Product) metrics.ProductEvent {
	return metrics.ProductEvent{
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Price:       p.Price,
	}
}

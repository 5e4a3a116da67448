package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecommerce/internal/domain"
	"ecommerce/internal/metrics"
	"ecommerce/internal/repository"
	"ecommerce/internal/service"
	"ecommerce/internal/service/mocks"
)

var smartphoneLabels = metrics.Labels{
	"product_id":   "1",
	"product_name": "Smartphone",
	"category":     "Electronics",
	"price":        "699.99",
}

func newProductService(t *testing.T) (*service.ProductService, *mocks.MockCache, *metrics.Registry) {
	t.Helper()
	rec, reg := newRecorder(t)
	cache := mocks.NewMockCache(t)
	repo := repository.NewProductRepository(repository.SeedProducts())
	return service.NewProductService(repo, cache, rec), cache, reg
}

func TestProductService_GetCacheMiss(t *testing.T) {
	svc, cache, reg := newProductService(t)
	cache.EXPECT().Get(1).Return(domain.Product{}, false)
	cache.EXPECT().Set(mock.MatchedBy(func(p domain.Product) bool { return p.ID == 1 })).Return()

	p, err := svc.Get(context.Background(), 1, domain.Actor{UserID: "101", UserName: "Alice Smith"})
	require.NoError(t, err)

	assert.Equal(t, "Smartphone", p.Name)
	assert.Equal(t, 1.0, counterValue(reg, metrics.ProductViewsTotal, smartphoneLabels))
	assert.Equal(t, 1.0, counterValue(reg, metrics.UserActivityTotal, metrics.Labels{
		"user_id": "101", "user_name": "Alice Smith", "activity_type": "view_product",
	}))
	assert.Equal(t, uint64(1), storeCalls(reg, metrics.OpRead, metrics.EntityProduct))
}

func TestProductService_GetCacheHit(t *testing.T) {
	svc, cache, reg := newProductService(t)
	cache.EXPECT().Get(1).Return(repository.SeedProducts()[0], true)

	_, err := svc.Get(context.Background(), 1, domain.Actor{})
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(reg, metrics.ProductViewsTotal, smartphoneLabels))
	assert.Zero(t, storeCalls(reg, metrics.OpRead, metrics.EntityProduct))

	f, ok := reg.Snapshot().Family(metrics.UserActivityTotal)
	require.True(t, ok)
	assert.Empty(t, f.Series, "anonymous views are not tracked as activity")
}

func TestProductService_GetNotFound(t *testing.T) {
	svc, cache, reg := newProductService(t)
	cache.EXPECT().Get(42).Return(domain.Product{}, false)

	_, err := svc.Get(context.Background(), 42, domain.Actor{})
	require.ErrorIs(t, err, service.ErrNotFound)

	f, ok := reg.Snapshot().Family(metrics.ProductViewsTotal)
	require.True(t, ok)
	assert.Empty(t, f.Series)
}

func TestProductService_List(t *testing.T) {
	svc, _, reg := newProductService(t)

	products, err := svc.List(context.Background(), domain.Actor{UserID: "102"})
	require.NoError(t, err)

	assert.Len(t, products, 5)
	assert.Equal(t, 1.0, counterValue(reg, metrics.UserActivityTotal, metrics.Labels{
		"user_id": "102", "user_name": "anonymous", "activity_type": "browse_products",
	}))
}

func TestProductService_Create(t *testing.T) {
	svc, _, reg := newProductService(t)

	p, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:     "Desk",
		Price:    250,
		Stock:    3,
		Category: "Furniture",
		Actor:    domain.Actor{UserID: "103"},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, p.ID)
	assert.Equal(t, 1.0, counterValue(reg, metrics.ProductCreationsTotal, metrics.Labels{
		"product_id": "6", "product_name": "Desk", "category": "Furniture", "price": "250",
	}))
	assert.Equal(t, 1.0, counterValue(reg, metrics.UserActivityTotal, metrics.Labels{
		"user_id": "103", "user_name": "admin", "activity_type": "create_product",
	}))
	assert.Equal(t, uint64(1), storeCalls(reg, metrics.OpCreate, metrics.EntityProduct))
}

func TestProductService_UpdateInvalidatesCache(t *testing.T) {
	svc, cache, reg := newProductService(t)
	cache.EXPECT().Del(2).Return().Once()

	p, err := svc.Update(context.Background(), 2, domain.UpdateProductRequest{Stock: 20})
	require.NoError(t, err)

	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 20, p.Stock)
	assert.Equal(t, uint64(1), storeCalls(reg, metrics.OpUpdate, metrics.EntityProduct))
}

func TestProductService_UpdateNotFound(t *testing.T) {
	svc, _, _ := newProductService(t)

	_, err := svc.Update(context.Background(), 99, domain.UpdateProductRequest{Stock: 20})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	svc, cache, reg := newProductService(t)
	cache.EXPECT().Del(5).Return().Once()

	err := svc.Delete(context.Background(), 5, domain.Actor{UserID: "103", UserName: "Charlie Brown"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(reg, metrics.UserActivityTotal, metrics.Labels{
		"user_id": "103", "user_name": "Charlie Brown", "activity_type": "delete_product",
	}))

	err = svc.Delete(context.Background(), 5, domain.Actor{})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestProductService_Name(t *testing.T) {
	svc, cache, _ := newProductService(t)
	cache.EXPECT().Get(mock.Anything).Return(domain.Product{}, false)
	cache.EXPECT().Set(mock.Anything).Return().Maybe()

	assert.Equal(t, "Headphones", svc.Name(context.Background(), 3))
	assert.Equal(t, "Product 77", svc.Name(context.Background(), 77))
}
